package commands

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrInitializeDeliveryCommandIsNotConstructed = errors.New(
	"InitializeDeliveryCommand must be created via NewInitializeDeliveryCommand constructor",
)

// InitializeDeliveryCommand represents a request to register a new delivery
// record. Carries the three participant identities, the expected arrival
// time, and the payload content fingerprint.
//
// Example:
//
//	cmd, err := NewInitializeDeliveryCommand(
//	    caller, deliveryID, operator, supplier, recipient, 1700000000, fingerprint)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to initialize delivery: %w", err)
//	}
type InitializeDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller             kernel.UUID
	deliveryID         kernel.UUID
	operator           kernel.UUID
	supplier           kernel.UUID
	recipient          kernel.UUID
	expectedArrival    uint64
	payloadFingerprint kernel.Fingerprint

	guard guard.ConstructorGuard
}

// NewInitializeDeliveryCommand creates a command to register a new delivery.
// Validates all identities and the fingerprint; the expected arrival is an
// opaque logical time and accepted as-is.
func NewInitializeDeliveryCommand(
	caller kernel.UUID,
	deliveryID kernel.UUID,
	operator kernel.UUID,
	supplier kernel.UUID,
	recipient kernel.UUID,
	expectedArrival uint64,
	payloadFingerprint kernel.Fingerprint,
) (InitializeDeliveryCommand, error) {
	command := InitializeDeliveryCommand{
		expectedArrival: expectedArrival,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setDeliveryID(deliveryID),
		command.setOperator(operator),
		command.setSupplier(supplier),
		command.setRecipient(recipient),
		command.setPayloadFingerprint(payloadFingerprint),
	); err != nil {
		return InitializeDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InitializeDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrInitializeDeliveryCommandIsNotConstructed)
}

// Caller returns the identity issuing the command.
func (c InitializeDeliveryCommand) Caller() kernel.UUID {
	return c.caller
}

// DeliveryID returns the identifier of the record to create.
func (c InitializeDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Operator returns the operator identity.
func (c InitializeDeliveryCommand) Operator() kernel.UUID {
	return c.operator
}

// Supplier returns the supplier identity.
func (c InitializeDeliveryCommand) Supplier() kernel.UUID {
	return c.supplier
}

// Recipient returns the recipient identity.
func (c InitializeDeliveryCommand) Recipient() kernel.UUID {
	return c.recipient
}

// ExpectedArrival returns the caller-supplied logical arrival time.
func (c InitializeDeliveryCommand) ExpectedArrival() uint64 {
	return c.expectedArrival
}

// PayloadFingerprint returns the opaque content hash of the payload.
func (c InitializeDeliveryCommand) PayloadFingerprint() kernel.Fingerprint {
	return c.payloadFingerprint
}

func (c *InitializeDeliveryCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *InitializeDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *InitializeDeliveryCommand) setOperator(operator kernel.UUID) error {
	if err := operator.Validate(); err != nil {
		return err
	}

	c.operator = operator
	return nil
}

func (c *InitializeDeliveryCommand) setSupplier(supplier kernel.UUID) error {
	if err := supplier.Validate(); err != nil {
		return err
	}

	c.supplier = supplier
	return nil
}

func (c *InitializeDeliveryCommand) setRecipient(recipient kernel.UUID) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}

func (c *InitializeDeliveryCommand) setPayloadFingerprint(fp kernel.Fingerprint) error {
	if err := fp.Validate(); err != nil {
		return err
	}

	c.payloadFingerprint = fp
	return nil
}

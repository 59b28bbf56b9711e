package commands

import (
	"errors"

	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"
	"trackledger/internal/pkg/guard"
)

var ErrFailDeliveryCommandIsNotConstructed = errors.New(
	"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
)

// FailDeliveryCommand represents a request to force a delivery into the
// terminal failed status without appending a tracking event.
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.UUID
	deliveryID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a command to force-fail a delivery.
// The reason is bounded the same way as an event note.
func NewFailDeliveryCommand(caller kernel.UUID, deliveryID kernel.UUID, reason string) (FailDeliveryCommand, error) {
	command := FailDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setDeliveryID(deliveryID),
		command.setReason(reason),
	); err != nil {
		return FailDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

// Caller returns the identity issuing the command.
func (c FailDeliveryCommand) Caller() kernel.UUID {
	return c.caller
}

// DeliveryID returns the identifier of the delivery to fail.
func (c FailDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Reason returns the failure reason text.
func (c FailDeliveryCommand) Reason() string {
	return c.reason
}

func (c *FailDeliveryCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *FailDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *FailDeliveryCommand) setReason(reason string) error {
	if len(reason) > delivery.MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("reason length", len(reason), 0, delivery.MaxNoteLength)
	}

	c.reason = reason
	return nil
}

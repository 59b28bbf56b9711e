package commands

import (
	"errors"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrRemoveRoleCommandIsNotConstructed = errors.New(
	"RemoveRoleCommand must be created via NewRemoveRoleCommand constructor",
)

// RemoveRoleCommand represents a request to revoke a role from a user for one
// delivery.
type RemoveRoleCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.UUID
	user       kernel.UUID
	deliveryID kernel.UUID
	role       access.Role

	guard guard.ConstructorGuard
}

// NewRemoveRoleCommand creates a command to revoke a role.
func NewRemoveRoleCommand(
	caller kernel.UUID, user kernel.UUID, deliveryID kernel.UUID, role access.Role,
) (RemoveRoleCommand, error) {
	command := RemoveRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setUser(user),
		command.setDeliveryID(deliveryID),
		command.setRole(role),
	); err != nil {
		return RemoveRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveRoleCommand) Validate() error {
	return c.guard.Validate(ErrRemoveRoleCommandIsNotConstructed)
}

// Caller returns the identity issuing the command.
func (c RemoveRoleCommand) Caller() kernel.UUID {
	return c.caller
}

// User returns the identity losing the role.
func (c RemoveRoleCommand) User() kernel.UUID {
	return c.user
}

// DeliveryID returns the delivery the role is scoped to.
func (c RemoveRoleCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Role returns the role to revoke.
func (c RemoveRoleCommand) Role() access.Role {
	return c.role
}

func (c *RemoveRoleCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RemoveRoleCommand) setUser(user kernel.UUID) error {
	if err := user.Validate(); err != nil {
		return err
	}

	c.user = user
	return nil
}

func (c *RemoveRoleCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RemoveRoleCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

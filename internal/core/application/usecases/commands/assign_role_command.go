package commands

import (
	"errors"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrAssignRoleCommandIsNotConstructed = errors.New(
	"AssignRoleCommand must be created via NewAssignRoleCommand constructor",
)

// AssignRoleCommand represents a request to grant a role to a user for one
// delivery.
type AssignRoleCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.UUID
	user       kernel.UUID
	deliveryID kernel.UUID
	role       access.Role

	guard guard.ConstructorGuard
}

// NewAssignRoleCommand creates a command to grant a role.
func NewAssignRoleCommand(
	caller kernel.UUID, user kernel.UUID, deliveryID kernel.UUID, role access.Role,
) (AssignRoleCommand, error) {
	command := AssignRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setUser(user),
		command.setDeliveryID(deliveryID),
		command.setRole(role),
	); err != nil {
		return AssignRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRoleCommand) Validate() error {
	return c.guard.Validate(ErrAssignRoleCommandIsNotConstructed)
}

// Caller returns the identity issuing the command.
func (c AssignRoleCommand) Caller() kernel.UUID {
	return c.caller
}

// User returns the identity receiving the role.
func (c AssignRoleCommand) User() kernel.UUID {
	return c.user
}

// DeliveryID returns the delivery the role is scoped to.
func (c AssignRoleCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Role returns the role to grant.
func (c AssignRoleCommand) Role() access.Role {
	return c.role
}

func (c *AssignRoleCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AssignRoleCommand) setUser(user kernel.UUID) error {
	if err := user.Validate(); err != nil {
		return err
	}

	c.user = user
	return nil
}

func (c *AssignRoleCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignRoleCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

package commands

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrRemoveOracleCommandIsNotConstructed = errors.New(
	"RemoveOracleCommand must be created via NewRemoveOracleCommand constructor",
)

// RemoveOracleCommand represents a request to remove an identity from the
// global trusted-oracle allowlist.
type RemoveOracleCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.UUID
	identity kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOracleCommand creates a command to delist an oracle identity.
func NewRemoveOracleCommand(caller kernel.UUID, identity kernel.UUID) (RemoveOracleCommand, error) {
	command := RemoveOracleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setIdentity(identity),
	); err != nil {
		return RemoveOracleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOracleCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOracleCommandIsNotConstructed)
}

// Caller returns the identity issuing the command.
func (c RemoveOracleCommand) Caller() kernel.UUID {
	return c.caller
}

// Identity returns the identity to delist.
func (c RemoveOracleCommand) Identity() kernel.UUID {
	return c.identity
}

func (c *RemoveOracleCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RemoveOracleCommand) setIdentity(identity kernel.UUID) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	c.identity = identity
	return nil
}

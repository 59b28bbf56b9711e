package commands

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrAddOracleCommandIsNotConstructed = errors.New(
	"AddOracleCommand must be created via NewAddOracleCommand constructor",
)

// AddOracleCommand represents a request to add an identity to the global
// trusted-oracle allowlist.
type AddOracleCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.UUID
	identity kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddOracleCommand creates a command to allowlist an oracle identity.
func NewAddOracleCommand(caller kernel.UUID, identity kernel.UUID) (AddOracleCommand, error) {
	command := AddOracleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setIdentity(identity),
	); err != nil {
		return AddOracleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOracleCommand) Validate() error {
	return c.guard.Validate(ErrAddOracleCommandIsNotConstructed)
}

// Caller returns the identity issuing the command.
func (c AddOracleCommand) Caller() kernel.UUID {
	return c.caller
}

// Identity returns the identity to allowlist.
func (c AddOracleCommand) Identity() kernel.UUID {
	return c.identity
}

func (c *AddOracleCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AddOracleCommand) setIdentity(identity kernel.UUID) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	c.identity = identity
	return nil
}

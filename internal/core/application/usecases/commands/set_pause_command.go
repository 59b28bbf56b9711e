package commands

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrSetPauseCommandIsNotConstructed = errors.New(
	"SetPauseCommand must be created via NewSetPauseCommand constructor",
)

// SetPauseCommand represents a request to set or clear the global pause flag.
type SetPauseCommand struct { //nolint:recvcheck //using for validation
	caller kernel.UUID
	paused bool

	guard guard.ConstructorGuard
}

// NewSetPauseCommand creates a command to toggle the pause flag.
func NewSetPauseCommand(caller kernel.UUID, paused bool) (SetPauseCommand, error) {
	command := SetPauseCommand{
		paused: paused,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setCaller(caller); err != nil {
		return SetPauseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPauseCommand) Validate() error {
	return c.guard.Validate(ErrSetPauseCommandIsNotConstructed)
}

// Caller returns the identity issuing the command.
func (c SetPauseCommand) Caller() kernel.UUID {
	return c.caller
}

// Paused returns the desired pause flag value.
func (c SetPauseCommand) Paused() bool {
	return c.paused
}

func (c *SetPauseCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

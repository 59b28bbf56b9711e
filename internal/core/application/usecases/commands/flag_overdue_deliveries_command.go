package commands

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrFlagOverdueDeliveriesCommandIsNotConstructed = errors.New(
	"FlagOverdueDeliveriesCommand must be created via NewFlagOverdueDeliveriesCommand constructor",
)

// FlagOverdueDeliveriesCommand represents a sweep request: mark every
// uncompleted delivery past its expected arrival as delayed. Issued by the
// overdue watch job under its configured automation identity.
type FlagOverdueDeliveriesCommand struct { //nolint:recvcheck //using for validation
	caller kernel.UUID

	guard guard.ConstructorGuard
}

// NewFlagOverdueDeliveriesCommand creates a command to sweep overdue deliveries.
func NewFlagOverdueDeliveriesCommand(caller kernel.UUID) (FlagOverdueDeliveriesCommand, error) {
	command := FlagOverdueDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCaller(caller); err != nil {
		return FlagOverdueDeliveriesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagOverdueDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrFlagOverdueDeliveriesCommandIsNotConstructed)
}

// Caller returns the automation identity issuing the sweep.
func (c FlagOverdueDeliveriesCommand) Caller() kernel.UUID {
	return c.caller
}

func (c *FlagOverdueDeliveriesCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

package commands

import (
	"context"
)

// AddOracleCommandHandler adds an identity to the trusted-oracle allowlist.
// Owner only; the allowlist is bounded and not deduplicated.
type AddOracleCommandHandler struct {
	uowFactory ControlUoWFactory
}

// NewAddOracleCommandHandler creates a handler for oracle registration.
func NewAddOracleCommandHandler(uowFactory ControlUoWFactory) AddOracleCommandHandler {
	return AddOracleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the oracle registration command.
func (h AddOracleCommandHandler) Handle(ctx context.Context, cmd AddOracleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	controlRepo := uow.ControlRepository()

	ctrl, err := controlRepo.GetForUpdate(ctx)
	if err != nil {
		return err
	}

	if err = ctrl.AddOracle(cmd.Caller(), cmd.Identity()); err != nil {
		return err
	}

	if err = controlRepo.Update(ctx, ctrl); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

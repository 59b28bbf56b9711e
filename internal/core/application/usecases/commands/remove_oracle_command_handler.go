package commands

import (
	"context"
)

// RemoveOracleCommandHandler removes an identity from the trusted-oracle
// allowlist. Owner only; removing an absent identity is a no-op success.
type RemoveOracleCommandHandler struct {
	uowFactory ControlUoWFactory
}

// NewRemoveOracleCommandHandler creates a handler for oracle delisting.
func NewRemoveOracleCommandHandler(uowFactory ControlUoWFactory) RemoveOracleCommandHandler {
	return RemoveOracleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the oracle delisting command.
func (h RemoveOracleCommandHandler) Handle(ctx context.Context, cmd RemoveOracleCommand) error {
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

	if err = ctrl.RemoveOracle(cmd.Caller(), cmd.Identity()); err != nil {
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

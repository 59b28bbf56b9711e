package commands

import (
	"context"
)

// SetPauseCommandHandler toggles the global pause flag. Owner only.
// The flag stays owner-writable while set, so a paused ledger can always be
// resumed.
type SetPauseCommandHandler struct {
	uowFactory ControlUoWFactory
}

// NewSetPauseCommandHandler creates a handler for pause toggles.
func NewSetPauseCommandHandler(uowFactory ControlUoWFactory) SetPauseCommandHandler {
	return SetPauseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pause toggle command.
func (h SetPauseCommandHandler) Handle(ctx context.Context, cmd SetPauseCommand) error {
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

	if err = ctrl.SetPaused(cmd.Caller(), cmd.Paused()); err != nil {
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

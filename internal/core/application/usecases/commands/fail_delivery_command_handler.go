package commands

import (
	"context"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/services"
	"trackledger/internal/pkg/errs"
)

// FailDeliveryCommandHandler forces a delivery into the failed status.
//
// Unlike a tracking update with a failed status, a forced failure requires
// the operator role specifically (the oracle allowlist does not apply) and
// leaves the event log untouched: sequence does not advance and actual
// arrival stays unset.
type FailDeliveryCommandHandler struct {
	uowFactory RegistryUoWFactory
	policy     services.AccessPolicy
}

// NewFailDeliveryCommandHandler creates a handler for forced failures.
func NewFailDeliveryCommandHandler(uowFactory RegistryUoWFactory) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the forced failure command.
// Checks run in the same order as a tracking update: record existence, pause
// flag, completion, then authorization.
func (h FailDeliveryCommandHandler) Handle(ctx context.Context, cmd FailDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	record, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	ctrl, err := uow.ControlRepository().Get(ctx)
	if err != nil {
		return err
	}
	if ctrl.Paused() {
		return control.ErrLedgerPaused
	}

	if record.IsCompleted() {
		return delivery.ErrDeliveryCompleted
	}

	assignment, err := uow.RoleAssignmentRepository().Find(ctx, cmd.Caller(), cmd.DeliveryID())
	if err != nil {
		return err
	}

	if !h.policy.HasRole(ctrl, assignment, cmd.Caller(), access.RoleOperator) {
		return errs.NewUnauthorizedError(cmd.Caller().String(), "fail delivery")
	}

	if err = record.Fail(cmd.Reason()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

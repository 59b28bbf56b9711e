package commands

import (
	"context"
	"errors"

	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/core/domain/services"
	"trackledger/internal/core/ports"
	"trackledger/internal/pkg/errs"
)

// overdueNote is the note text stamped onto delay events by the watch sweep.
const overdueNote = "overdue watch: expected arrival passed"

// FlagOverdueDeliveriesCommandHandler sweeps uncompleted deliveries past
// their expected arrival and appends a delayed tracking event to each.
//
// The sweep runs under the same authorization rules as a manual tracking
// update, so the automation identity must be in the oracle allowlist (or be
// the owner). Deliveries already marked delayed are skipped, and a delivery
// whose event log is full is skipped rather than failing the batch.
type FlagOverdueDeliveriesCommandHandler struct {
	uowFactory LedgerUoWFactory
	clock      ports.Clock
	policy     services.AccessPolicy
}

// NewFlagOverdueDeliveriesCommandHandler creates a handler for the overdue sweep.
func NewFlagOverdueDeliveriesCommandHandler(
	uowFactory LedgerUoWFactory, clock ports.Clock,
) FlagOverdueDeliveriesCommandHandler {
	return FlagOverdueDeliveriesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the sweep command and returns the number of deliveries
// flagged. Returns control.ErrLedgerPaused without flagging anything while
// the ledger is paused.
func (h FlagOverdueDeliveriesCommandHandler) Handle(
	ctx context.Context, cmd FlagOverdueDeliveriesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ctrl, err := uow.ControlRepository().Get(ctx)
	if err != nil {
		return 0, err
	}
	if ctrl.Paused() {
		return 0, control.ErrLedgerPaused
	}

	now := h.clock.Now()

	deliveryRepo := uow.DeliveryRepository()
	records, err := deliveryRepo.GetAllOverdue(ctx, now)
	if err != nil {
		return 0, err
	}

	flagged := 0
	for _, record := range records {
		if record.Status() == delivery.Delayed {
			continue
		}

		assignment, findErr := uow.RoleAssignmentRepository().Find(ctx, cmd.Caller(), record.ID())
		if findErr != nil {
			return 0, findErr
		}

		allowed, oracleVerified := h.policy.CanTrack(ctrl, assignment, cmd.Caller())
		if !allowed {
			return 0, errs.NewUnauthorizedError(cmd.Caller().String(), "flag overdue deliveries")
		}

		// The sweep reports no position of its own.
		point, pointErr := kernel.NewGeoPoint("0", "0", 0)
		if pointErr != nil {
			return 0, pointErr
		}

		event, trackErr := record.Track(point, delivery.Delayed, cmd.Caller(), overdueNote, oracleVerified, now)
		if errors.Is(trackErr, errs.ErrCapacityExceeded) {
			continue
		}
		if trackErr != nil {
			return 0, trackErr
		}

		if err = deliveryRepo.Update(ctx, record); err != nil {
			return 0, err
		}

		if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
			return 0, err
		}

		flagged++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return flagged, nil
}

package commands

import (
	"context"

	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/core/domain/services"
	"trackledger/internal/core/ports"
	"trackledger/internal/pkg/errs"
)

// TrackDeliveryCommandHandler appends a tracking event to a delivery's log.
//
// The checks run in a fixed order so a caller always observes the same
// failure for the same state: record existence, pause flag, completion,
// authorization, payload validity, log capacity. The record update and the
// event insert commit together.
//
// Example:
//
//	handler := NewTrackDeliveryCommandHandler(uowFactory, clock)
//	cmd, _ := NewTrackDeliveryCommand(caller, deliveryID, "52.52", "13.40", 34, "in-transit", "left depot")
//	seq, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("tracking update rejected: %w", err)
//	}
//	fmt.Printf("recorded event #%d", seq)
type TrackDeliveryCommandHandler struct {
	uowFactory LedgerUoWFactory
	clock      ports.Clock
	policy     services.AccessPolicy
}

// NewTrackDeliveryCommandHandler creates a handler for tracking updates.
func NewTrackDeliveryCommandHandler(uowFactory LedgerUoWFactory, clock ports.Clock) TrackDeliveryCommandHandler {
	return TrackDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the tracking command and returns the sequence number of
// the appended event. The delivery row is locked for the transaction, so
// concurrent updates to the same delivery serialize and sequence numbers
// never collide.
func (h TrackDeliveryCommandHandler) Handle(ctx context.Context, cmd TrackDeliveryCommand) (uint32, error) {
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

	deliveryRepo := uow.DeliveryRepository()

	record, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return 0, err
	}

	ctrl, err := uow.ControlRepository().Get(ctx)
	if err != nil {
		return 0, err
	}
	if ctrl.Paused() {
		return 0, control.ErrLedgerPaused
	}

	if record.IsCompleted() {
		return 0, delivery.ErrDeliveryCompleted
	}

	assignment, err := uow.RoleAssignmentRepository().Find(ctx, cmd.Caller(), cmd.DeliveryID())
	if err != nil {
		return 0, err
	}

	allowed, oracleVerified := h.policy.CanTrack(ctrl, assignment, cmd.Caller())
	if !allowed {
		return 0, errs.NewUnauthorizedError(cmd.Caller().String(), "track delivery")
	}

	status, err := delivery.ParseStatus(cmd.Status())
	if err != nil {
		return 0, err
	}

	point, err := kernel.NewGeoPoint(cmd.Latitude(), cmd.Longitude(), cmd.Altitude())
	if err != nil {
		return 0, err
	}

	if len(cmd.Note()) > delivery.MaxNoteLength {
		return 0, errs.NewValueIsOutOfRangeError("note length", len(cmd.Note()), 0, delivery.MaxNoteLength)
	}

	event, err := record.Track(point, status, cmd.Caller(), cmd.Note(), oracleVerified, h.clock.Now())
	if err != nil {
		return 0, err
	}

	if err = deliveryRepo.Update(ctx, record); err != nil {
		return 0, err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return event.Sequence(), nil
}

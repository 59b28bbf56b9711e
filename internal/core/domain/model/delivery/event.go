package delivery

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"
)

const (
	// MaxTrackingEvents is the hard cap on event log entries per delivery.
	// Sequence numbers run from 1 to MaxTrackingEvents inclusive.
	MaxTrackingEvents = 100

	// MaxNoteLength bounds the free-text note attached to a tracking event.
	MaxNoteLength = 500
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent instance
// was not created through the NewTrackingEvent factory method.
var ErrTrackingEventIsNotConstructed = errors.New(
	"TrackingEvent must be created via NewTrackingEvent constructor")

// TrackingEvent is one immutable entry of a delivery's append-only event log,
// keyed by (deliveryID, sequence). Entries are never updated or deleted once
// written.
type TrackingEvent struct {
	deliveryID kernel.UUID

	// sequence positions the entry in the log, in [1, MaxTrackingEvents].
	sequence uint32

	// recordedAt is the logical clock value at append time.
	recordedAt uint64

	point  kernel.GeoPoint
	status Status

	// updater is the identity that wrote the entry.
	updater kernel.UUID

	note string

	// oracleVerified is true iff the updater was in the trusted oracle
	// allowlist at append time.
	oracleVerified bool

	isConstructed bool
}

// NewTrackingEvent creates a validated event log entry.
//
// Parameters must satisfy: valid delivery and updater identities, sequence in
// [1, MaxTrackingEvents], a constructed GeoPoint, a status from the closed
// enumeration, and a note no longer than MaxNoteLength.
func NewTrackingEvent(
	deliveryID kernel.UUID,
	sequence uint32,
	recordedAt uint64,
	point kernel.GeoPoint,
	status Status,
	updater kernel.UUID,
	note string,
	oracleVerified bool,
) (*TrackingEvent, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		updater.Validate(),
		point.Validate(),
		status.Validate(),
		validateSequence(sequence),
		validateNote(note),
	); err != nil {
		return nil, err
	}

	return &TrackingEvent{
		deliveryID:     deliveryID,
		sequence:       sequence,
		recordedAt:     recordedAt,
		point:          point,
		status:         status,
		updater:        updater,
		note:           note,
		oracleVerified: oracleVerified,
		isConstructed:  true,
	}, nil
}

// RestoreTrackingEvent reconstructs an event from persistence.
// It applies the same validation as NewTrackingEvent.
func RestoreTrackingEvent(
	deliveryID kernel.UUID,
	sequence uint32,
	recordedAt uint64,
	point kernel.GeoPoint,
	status Status,
	updater kernel.UUID,
	note string,
	oracleVerified bool,
) (*TrackingEvent, error) {
	return NewTrackingEvent(deliveryID, sequence, recordedAt, point, status, updater, note, oracleVerified)
}

// Validate ensures the TrackingEvent was created through its constructor.
func (e *TrackingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// DeliveryID returns the delivery the entry belongs to.
func (e *TrackingEvent) DeliveryID() kernel.UUID {
	return e.deliveryID
}

// Sequence returns the entry's position in the log.
func (e *TrackingEvent) Sequence() uint32 {
	return e.sequence
}

// RecordedAt returns the logical clock value at append time.
func (e *TrackingEvent) RecordedAt() uint64 {
	return e.recordedAt
}

// Point returns the reported position.
func (e *TrackingEvent) Point() kernel.GeoPoint {
	return e.point
}

// Status returns the status value carried by the entry.
func (e *TrackingEvent) Status() Status {
	return e.status
}

// Updater returns the identity that wrote the entry.
func (e *TrackingEvent) Updater() kernel.UUID {
	return e.updater
}

// Note returns the free-text note.
func (e *TrackingEvent) Note() string {
	return e.note
}

// OracleVerified reports whether the entry was written by an allowlisted
// automated source.
func (e *TrackingEvent) OracleVerified() bool {
	return e.oracleVerified
}

func validateSequence(sequence uint32) error {
	if sequence < 1 || sequence > MaxTrackingEvents {
		return errs.NewValueIsOutOfRangeError("sequence", sequence, 1, MaxTrackingEvents)
	}
	return nil
}

func validateNote(note string) error {
	if len(note) > MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("note length", len(note), 0, MaxNoteLength)
	}
	return nil
}

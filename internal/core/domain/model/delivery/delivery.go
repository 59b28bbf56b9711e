package delivery

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDeliveryCompleted is returned by every mutating operation once the
	// delivery reached a terminal status.
	ErrDeliveryCompleted = errors.New("delivery is already completed")

	// ErrEventLogFull is returned when the event log already holds
	// MaxTrackingEvents entries.
	ErrEventLogFull = errs.NewCapacityExceededError("event log", MaxTrackingEvents)
)

// Delivery is the aggregate root of the tracking ledger: one record per
// delivery id, advancing through the status lifecycle, with an append-only,
// strictly sequenced event log attached.
//
// Delivery maintains these invariants:
//   - completed is true iff status is terminal
//   - sequence equals the count of tracking events ever written and never decreases
//   - once completed, status, sequence, and completed are immutable forever
//   - failureReason is set only by Fail or a failed tracking status and is never cleared
type Delivery struct {
	id kernel.UUID

	operator  kernel.UUID
	supplier  kernel.UUID
	recipient kernel.UUID

	// startTime is the logical clock value at creation.
	startTime uint64

	// expectedArrival is the caller-supplied logical arrival time.
	expectedArrival uint64

	// actualArrival is set only when a tracking update completes the delivery.
	actualArrival *uint64

	payloadFingerprint kernel.Fingerprint

	// sequence is the number of tracking events written so far, starting at 0.
	sequence uint32

	status    Status
	completed bool

	failureReason *string

	isConstructed bool
}

// NewDelivery creates a delivery record in the Pending status with an empty
// event log. The operator, supplier, and recipient identities are opaque to
// the ledger and assumed valid by the caller (identity verification is an
// external collaborator).
func NewDelivery(
	id kernel.UUID,
	operator kernel.UUID,
	supplier kernel.UUID,
	recipient kernel.UUID,
	expectedArrival uint64,
	payloadFingerprint kernel.Fingerprint,
	startTime uint64,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		operator.Validate(),
		supplier.Validate(),
		recipient.Validate(),
		payloadFingerprint.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:                 id,
		operator:           operator,
		supplier:           supplier,
		recipient:          recipient,
		startTime:          startTime,
		expectedArrival:    expectedArrival,
		payloadFingerprint: payloadFingerprint,
		sequence:           0,
		status:             Pending,
		completed:          false,
		isConstructed:      true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence, including its
// lifecycle position. Enforces the completed/terminal consistency invariant.
func RestoreDelivery(
	id kernel.UUID,
	operator kernel.UUID,
	supplier kernel.UUID,
	recipient kernel.UUID,
	startTime uint64,
	expectedArrival uint64,
	actualArrival *uint64,
	payloadFingerprint kernel.Fingerprint,
	sequence uint32,
	status Status,
	completed bool,
	failureReason *string,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		operator.Validate(),
		supplier.Validate(),
		recipient.Validate(),
		payloadFingerprint.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if completed != status.IsTerminal() {
		return nil, errs.NewValueIsInvalidErrorWithCause("completed",
			errors.New("completed flag does not match terminal status"))
	}

	return &Delivery{
		id:                 id,
		operator:           operator,
		supplier:           supplier,
		recipient:          recipient,
		startTime:          startTime,
		expectedArrival:    expectedArrival,
		actualArrival:      actualArrival,
		payloadFingerprint: payloadFingerprint,
		sequence:           sequence,
		status:             status,
		completed:          completed,
		failureReason:      failureReason,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Operator returns the operator identity.
func (d *Delivery) Operator() kernel.UUID {
	return d.operator
}

// Supplier returns the supplier identity.
func (d *Delivery) Supplier() kernel.UUID {
	return d.supplier
}

// Recipient returns the recipient identity.
func (d *Delivery) Recipient() kernel.UUID {
	return d.recipient
}

// StartTime returns the logical clock value at creation.
func (d *Delivery) StartTime() uint64 {
	return d.startTime
}

// ExpectedArrival returns the caller-supplied logical arrival time.
func (d *Delivery) ExpectedArrival() uint64 {
	return d.expectedArrival
}

// ActualArrival returns the logical completion time.
// Returns nil while the delivery is not completed via a tracking update.
func (d *Delivery) ActualArrival() *uint64 {
	return d.actualArrival
}

// PayloadFingerprint returns the opaque content hash of the payload.
func (d *Delivery) PayloadFingerprint() kernel.Fingerprint {
	return d.payloadFingerprint
}

// Sequence returns the number of tracking events written so far.
func (d *Delivery) Sequence() uint32 {
	return d.sequence
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// IsCompleted reports whether the delivery reached a terminal status.
func (d *Delivery) IsCompleted() bool {
	return d.completed
}

// FailureReason returns the recorded failure reason.
// Returns nil if no forced failure was recorded.
func (d *Delivery) FailureReason() *string {
	return d.failureReason
}

// IsOverdue reports whether the delivery is uncompleted past its expected
// arrival at the given logical time.
func (d *Delivery) IsOverdue(at uint64) bool {
	return !d.completed && at > d.expectedArrival
}

// Track appends a tracking event to the log and advances the record.
//
// Business rules enforced here:
//   - A completed delivery accepts no further events (ErrDeliveryCompleted)
//   - The log holds at most MaxTrackingEvents entries (ErrEventLogFull)
//   - The event itself must validate (status, point, note bounds)
//
// On success the record's status becomes the event's status and sequence
// advances by exactly 1. If the status is terminal, the delivery completes
// and actualArrival is set to the event's logical time; a failed status also
// records a failure reason from the note.
//
// Returns the appended event; the record and the event must be persisted
// together atomically by the caller.
func (d *Delivery) Track(
	point kernel.GeoPoint,
	status Status,
	updater kernel.UUID,
	note string,
	oracleVerified bool,
	at uint64,
) (*TrackingEvent, error) {
	if d.completed {
		return nil, ErrDeliveryCompleted
	}

	if d.sequence >= MaxTrackingEvents {
		return nil, ErrEventLogFull
	}

	event, err := NewTrackingEvent(d.id, d.sequence+1, at, point, status, updater, note, oracleVerified)
	if err != nil {
		return nil, err
	}

	d.sequence++
	d.status = status
	if status.IsTerminal() {
		d.completed = true
		arrival := at
		d.actualArrival = &arrival
		if status == Failed && d.failureReason == nil {
			reason := note
			d.failureReason = &reason
		}
	}

	return event, nil
}

// Fail forces the delivery into the terminal Failed status with the given
// reason. No tracking event is appended and sequence does not advance.
func (d *Delivery) Fail(reason string) error {
	if d.completed {
		return ErrDeliveryCompleted
	}

	d.status = Failed
	d.completed = true
	d.failureReason = &reason
	return nil
}

package queries

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrGetTrackingEventQueryIsNotConstructed = errors.New(
	"GetTrackingEventQuery must be created via NewGetTrackingEventQuery constructor",
)

// GetTrackingEventQuery retrieves one event log entry by its
// (delivery, sequence) key.
type GetTrackingEventQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	sequence   uint32

	guard guard.ConstructorGuard
}

// NewGetTrackingEventQuery creates a query for one event log entry.
func NewGetTrackingEventQuery(deliveryID kernel.UUID, sequence uint32) (GetTrackingEventQuery, error) {
	query := GetTrackingEventQuery{
		sequence: sequence,
		guard:    guard.NewConstructorGuard(),
	}

	if err := query.setDeliveryID(deliveryID); err != nil {
		return GetTrackingEventQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingEventQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingEventQueryIsNotConstructed)
}

// DeliveryID returns the requested delivery identifier.
func (q GetTrackingEventQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// Sequence returns the requested sequence number.
func (q GetTrackingEventQuery) Sequence() uint32 {
	return q.sequence
}

func (q *GetTrackingEventQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	q.deliveryID = deliveryID
	return nil
}

// GetTrackingEventQueryResponse is the read model of one event log entry.
type GetTrackingEventQueryResponse struct {
	DeliveryID     kernel.UUID
	Sequence       uint32
	RecordedAt     uint64
	Latitude       string
	Longitude      string
	Altitude       uint32
	Status         string
	Updater        kernel.UUID
	Note           string
	OracleVerified bool
}

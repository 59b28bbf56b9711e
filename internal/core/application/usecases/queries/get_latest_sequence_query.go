package queries

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrGetLatestSequenceQueryIsNotConstructed = errors.New(
	"GetLatestSequenceQuery must be created via NewGetLatestSequenceQuery constructor",
)

// GetLatestSequenceQuery retrieves the number of tracking events recorded for
// one delivery. Zero means the log is still empty.
type GetLatestSequenceQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLatestSequenceQuery creates a query for the latest sequence number.
func NewGetLatestSequenceQuery(deliveryID kernel.UUID) (GetLatestSequenceQuery, error) {
	query := GetLatestSequenceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDeliveryID(deliveryID); err != nil {
		return GetLatestSequenceQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestSequenceQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestSequenceQueryIsNotConstructed)
}

// DeliveryID returns the requested delivery identifier.
func (q GetLatestSequenceQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

func (q *GetLatestSequenceQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	q.deliveryID = deliveryID
	return nil
}

package queries

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrIsDeliveryCompletedQueryIsNotConstructed = errors.New(
	"IsDeliveryCompletedQuery must be created via NewIsDeliveryCompletedQuery constructor",
)

// IsDeliveryCompletedQuery reports whether one delivery reached a terminal
// status.
type IsDeliveryCompletedQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIsDeliveryCompletedQuery creates a completion check query.
func NewIsDeliveryCompletedQuery(deliveryID kernel.UUID) (IsDeliveryCompletedQuery, error) {
	query := IsDeliveryCompletedQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDeliveryID(deliveryID); err != nil {
		return IsDeliveryCompletedQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q IsDeliveryCompletedQuery) Validate() error {
	return q.guard.Validate(ErrIsDeliveryCompletedQueryIsNotConstructed)
}

// DeliveryID returns the requested delivery identifier.
func (q IsDeliveryCompletedQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

func (q *IsDeliveryCompletedQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	q.deliveryID = deliveryID
	return nil
}

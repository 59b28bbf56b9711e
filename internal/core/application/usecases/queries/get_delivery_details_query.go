// Package queries contains read operations for retrieving ledger state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read committed state directly through SQL and never mutate.
package queries

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrGetDeliveryDetailsQueryIsNotConstructed = errors.New(
	"GetDeliveryDetailsQuery must be created via NewGetDeliveryDetailsQuery constructor",
)

// GetDeliveryDetailsQuery retrieves the full delivery record for one id.
//
// Example:
//
//	query, _ := NewGetDeliveryDetailsQuery(deliveryID)
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if details == nil {
//	    fmt.Println("no such delivery")
//	}
type GetDeliveryDetailsQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryDetailsQuery creates a query for one delivery record.
func NewGetDeliveryDetailsQuery(deliveryID kernel.UUID) (GetDeliveryDetailsQuery, error) {
	query := GetDeliveryDetailsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDeliveryID(deliveryID); err != nil {
		return GetDeliveryDetailsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryDetailsQueryIsNotConstructed)
}

// DeliveryID returns the requested delivery identifier.
func (q GetDeliveryDetailsQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

func (q *GetDeliveryDetailsQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	q.deliveryID = deliveryID
	return nil
}

// GetDeliveryDetailsQueryResponse is the read model of one delivery record.
// The fingerprint is hex-encoded and the status carries its wire name.
type GetDeliveryDetailsQueryResponse struct {
	ID                 kernel.UUID
	Operator           kernel.UUID
	Supplier           kernel.UUID
	Recipient          kernel.UUID
	StartTime          uint64
	ExpectedArrival    uint64
	ActualArrival      *uint64
	PayloadFingerprint string
	Sequence           uint32
	Status             string
	Completed          bool
	FailureReason      *string
}

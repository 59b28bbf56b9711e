package queries

import (
	"errors"

	"trackledger/internal/pkg/guard"
)

var ErrGetOverdueDeliveriesQueryIsNotConstructed = errors.New(
	"GetOverdueDeliveriesQuery must be created via NewGetOverdueDeliveriesQuery constructor",
)

// GetOverdueDeliveriesQuery retrieves the ids of uncompleted deliveries whose
// expected arrival lies strictly before the given logical time.
type GetOverdueDeliveriesQuery struct {
	asOf uint64

	guard guard.ConstructorGuard
}

// NewGetOverdueDeliveriesQuery creates an overdue listing query.
func NewGetOverdueDeliveriesQuery(asOf uint64) GetOverdueDeliveriesQuery {
	return GetOverdueDeliveriesQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueDeliveriesQueryIsNotConstructed)
}

// AsOf returns the logical time the overdue check is evaluated against.
func (q GetOverdueDeliveriesQuery) AsOf() uint64 {
	return q.asOf
}

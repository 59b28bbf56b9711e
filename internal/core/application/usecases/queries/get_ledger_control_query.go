package queries

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrGetLedgerControlQueryIsNotConstructed = errors.New(
	"GetLedgerControlQuery must be created via NewGetLedgerControlQuery constructor",
)

// GetLedgerControlQuery retrieves the global administrative state: the owner
// identity and the pause flag. This is a parameterless query.
type GetLedgerControlQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLedgerControlQuery creates a query for the administrative state.
func NewGetLedgerControlQuery() GetLedgerControlQuery {
	return GetLedgerControlQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLedgerControlQuery) Validate() error {
	return q.guard.Validate(ErrGetLedgerControlQueryIsNotConstructed)
}

// GetLedgerControlQueryResponse is the read model of the administrative state.
type GetLedgerControlQueryResponse struct {
	Owner  kernel.UUID
	Paused bool
}

package queries

import (
	"errors"

	"trackledger/internal/pkg/guard"
)

var ErrGetOraclesQueryIsNotConstructed = errors.New(
	"GetOraclesQuery must be created via NewGetOraclesQuery constructor",
)

// GetOraclesQuery retrieves the global trusted-oracle allowlist.
// This is a parameterless query.
type GetOraclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOraclesQuery creates a query for the oracle allowlist.
func NewGetOraclesQuery() GetOraclesQuery {
	return GetOraclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOraclesQuery) Validate() error {
	return q.guard.Validate(ErrGetOraclesQueryIsNotConstructed)
}

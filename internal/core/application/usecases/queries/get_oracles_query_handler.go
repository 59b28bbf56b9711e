package queries

import (
	"context"

	"trackledger/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOraclesQueryHandler reads the trusted-oracle allowlist from the
// administrative state row.
type GetOraclesQueryHandler struct {
	db *gorm.DB
}

// NewGetOraclesQueryHandler creates a handler for oracle allowlist queries.
func NewGetOraclesQueryHandler(db *gorm.DB) GetOraclesQueryHandler {
	return GetOraclesQueryHandler{db: db}
}

// Handle executes the allowlist query.
// Returns an empty list when the administrative state is not bootstrapped yet.
func (h GetOraclesQueryHandler) Handle(ctx context.Context, query GetOraclesQuery) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT oracles
		FROM ledger_controls
		LIMIT 1
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	oracles := make([]kernel.UUID, 0)

	if !rows.Next() {
		return oracles, rows.Err()
	}

	var stored pq.StringArray
	if err = rows.Scan(&stored); err != nil {
		return nil, err
	}

	for _, value := range stored {
		oracle, parseErr := kernel.UUIDFromString(value)
		if parseErr != nil {
			return nil, parseErr
		}
		oracles = append(oracles, oracle)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return oracles, nil
}

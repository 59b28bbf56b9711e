package queries

import (
	"context"

	"trackledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueDeliveriesQueryHandler lists deliveries past their expected
// arrival that have not completed.
type GetOverdueDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueDeliveriesQueryHandler creates a handler for overdue listings.
func NewGetOverdueDeliveriesQueryHandler(db *gorm.DB) GetOverdueDeliveriesQueryHandler {
	return GetOverdueDeliveriesQueryHandler{db: db}
}

// Handle executes the overdue listing.
// Results are sorted by expected arrival, most overdue first.
func (h GetOverdueDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueDeliveriesQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM deliveries
		WHERE completed = false AND expected_arrival < ?
		ORDER BY expected_arrival
	`, int64(query.AsOf())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, deliveryID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

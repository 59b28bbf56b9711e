package queries

import (
	"context"

	"trackledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// IsDeliveryCompletedQueryHandler reads the completion flag of one delivery.
type IsDeliveryCompletedQueryHandler struct {
	db *gorm.DB
}

// NewIsDeliveryCompletedQueryHandler creates a handler for completion checks.
func NewIsDeliveryCompletedQueryHandler(db *gorm.DB) IsDeliveryCompletedQueryHandler {
	return IsDeliveryCompletedQueryHandler{db: db}
}

// Handle executes the completion check.
// Returns an ObjectNotFoundError when the id has no record.
func (h IsDeliveryCompletedQueryHandler) Handle(ctx context.Context, query IsDeliveryCompletedQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT completed
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return false, err
		}
		return false, errs.NewObjectNotFoundError("deliveryId", query.DeliveryID().String())
	}

	var completed bool
	if err = rows.Scan(&completed); err != nil {
		return false, err
	}

	if err = rows.Err(); err != nil {
		return false, err
	}

	return completed, nil
}

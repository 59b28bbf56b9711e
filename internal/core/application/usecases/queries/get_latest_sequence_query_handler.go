package queries

import (
	"context"

	"trackledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLatestSequenceQueryHandler retrieves the current sequence counter of one
// delivery.
type GetLatestSequenceQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestSequenceQueryHandler creates a handler for sequence lookups.
func NewGetLatestSequenceQueryHandler(db *gorm.DB) GetLatestSequenceQueryHandler {
	return GetLatestSequenceQueryHandler{db: db}
}

// Handle executes the sequence lookup.
// Returns an ObjectNotFoundError when the id has no record.
func (h GetLatestSequenceQueryHandler) Handle(ctx context.Context, query GetLatestSequenceQuery) (uint32, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT sequence
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, err
		}
		return 0, errs.NewObjectNotFoundError("deliveryId", query.DeliveryID().String())
	}

	var sequence uint32
	if err = rows.Scan(&sequence); err != nil {
		return 0, err
	}

	if err = rows.Err(); err != nil {
		return 0, err
	}

	return sequence, nil
}

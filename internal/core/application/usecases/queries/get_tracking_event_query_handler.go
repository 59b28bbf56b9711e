package queries

import (
	"context"

	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingEventQueryHandler retrieves one event log entry from the database.
type GetTrackingEventQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingEventQueryHandler creates a handler for event log lookups.
func NewGetTrackingEventQueryHandler(db *gorm.DB) GetTrackingEventQueryHandler {
	return GetTrackingEventQueryHandler{db: db}
}

// Handle executes the lookup for one event log entry.
// Returns nil without error when no entry exists at the requested sequence.
func (h GetTrackingEventQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingEventQuery,
) (*GetTrackingEventQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_id,
			sequence,
			recorded_at,
			latitude,
			longitude,
			altitude,
			status,
			updater_id,
			note,
			oracle_verified
		FROM tracking_events
		WHERE delivery_id = ? AND sequence = ?
	`, query.DeliveryID().Bytes(), query.Sequence()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		deliveryID, updaterID uuid.UUID
		recordedAt            int64
		status                int
		response              GetTrackingEventQueryResponse
	)

	if err = rows.Scan(
		&deliveryID,
		&response.Sequence,
		&recordedAt,
		&response.Latitude,
		&response.Longitude,
		&response.Altitude,
		&status,
		&updaterID,
		&response.Note,
		&response.OracleVerified,
	); err != nil {
		return nil, err
	}

	response.RecordedAt = uint64(recordedAt)
	response.Status = delivery.Status(status).String()

	if response.DeliveryID, err = kernel.UUIDFromBytes(deliveryID[:]); err != nil {
		return nil, err
	}
	if response.Updater, err = kernel.UUIDFromBytes(updaterID[:]); err != nil {
		return nil, err
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &response, nil
}

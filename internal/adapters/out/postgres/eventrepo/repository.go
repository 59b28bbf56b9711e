package eventrepo

import (
	"context"
	"errors"
	"fmt"

	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
// The log is append-only: there is no update or delete path.
type GormTrackingEventRepository struct {
	db *gorm.DB
}

// NewGormTrackingEventRepository creates a new GORM event log repository.
func NewGormTrackingEventRepository(db *gorm.DB) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{db: db}
}

// Add appends a new event log entry.
func (r *GormTrackingEventRepository) Add(ctx context.Context, event *delivery.TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves the entry keyed by (deliveryID, sequence).
func (r *GormTrackingEventRepository) Get(
	ctx context.Context, deliveryID kernel.UUID, sequence uint32,
) (*delivery.TrackingEvent, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingEventDTO
	err := r.db.WithContext(ctx).
		First(&dto, "delivery_id = ? AND sequence = ?", deliveryID.Bytes(), sequence).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingEvent",
				fmt.Sprintf("%s/%d", deliveryID.String(), sequence))
		}
		return nil, err
	}

	return toDomain(dto)
}

// Package eventrepo persists the append-only tracking event log.
// Entries are keyed by (delivery_id, sequence) and only ever inserted.
package eventrepo

import (
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for one event log entry.
// The composite primary key enforces sequence uniqueness per delivery at the
// storage level.
type TrackingEventDTO struct {
	DeliveryID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence       uint32    `gorm:"primaryKey"`
	RecordedAt     int64
	Latitude       string `gorm:"type:varchar(64)"`
	Longitude      string `gorm:"type:varchar(64)"`
	Altitude       uint32
	Status         int
	UpdaterID      uuid.UUID `gorm:"type:uuid"`
	Note           string    `gorm:"type:varchar(500)"`
	OracleVerified bool
}

// TableName specifies the database table name for event log entries.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts an event log entry to its database representation.
func fromDomain(event *delivery.TrackingEvent) TrackingEventDTO {
	return TrackingEventDTO{
		DeliveryID:     event.DeliveryID().Bytes(),
		Sequence:       event.Sequence(),
		RecordedAt:     int64(event.RecordedAt()),
		Latitude:       event.Point().Latitude(),
		Longitude:      event.Point().Longitude(),
		Altitude:       event.Point().Altitude(),
		Status:         int(event.Status()),
		UpdaterID:      event.Updater().Bytes(),
		Note:           event.Note(),
		OracleVerified: event.OracleVerified(),
	}
}

// toDomain converts a database DTO back into an event log entry.
func toDomain(dto TrackingEventDTO) (*delivery.TrackingEvent, error) {
	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	updater, err := kernel.UUIDFromBytes(dto.UpdaterID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude, dto.Altitude)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreTrackingEvent(
		deliveryID,
		dto.Sequence,
		uint64(dto.RecordedAt),
		point,
		delivery.Status(dto.Status),
		updater,
		dto.Note,
		dto.OracleVerified,
	)
}

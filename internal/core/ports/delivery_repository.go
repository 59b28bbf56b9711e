package ports

import (
	"context"

	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the id has no record.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery aggregate and locks its row for the
	// duration of the enclosing transaction, so the read-validate-mutate
	// sequence of a command appears atomic per delivery id.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Exists reports whether a record exists for the delivery id.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// GetAllOverdue retrieves every uncompleted delivery whose expected
	// arrival lies strictly before the given logical time.
	GetAllOverdue(ctx context.Context, asOf uint64) ([]*delivery.Delivery, error)
}

// TrackingEventRepository defines the persistence contract for the
// append-only event log. Entries are only ever inserted, never updated
// or deleted.
type TrackingEventRepository interface {
	// Add appends a new event log entry.
	Add(ctx context.Context, event *delivery.TrackingEvent) error

	// Get retrieves the entry keyed by (deliveryID, sequence).
	// Returns an ObjectNotFoundError when no such entry exists.
	Get(ctx context.Context, deliveryID kernel.UUID, sequence uint32) (*delivery.TrackingEvent, error)
}

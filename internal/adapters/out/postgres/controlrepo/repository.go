package controlrepo

import (
	"context"
	"errors"

	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormControlRepository implements ControlRepository using GORM.
type GormControlRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormControlRepository creates a new GORM administrative state repository.
func NewGormControlRepository(db *gorm.DB, tracker aggregateTracker) *GormControlRepository {
	return &GormControlRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the administrative state.
func (r *GormControlRepository) Get(ctx context.Context) (*control.Control, error) {
	var dto LedgerControlDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ledgerControl", "singleton")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves the administrative state and locks its row until
// the enclosing transaction ends, serializing administrative mutations.
func (r *GormControlRepository) GetForUpdate(ctx context.Context) (*control.Control, error) {
	var dto LedgerControlDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", singletonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ledgerControl", "singleton")
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the pause flag and oracle allowlist.
// The owner identity is immutable after Init and never written here.
// Columns are written unconditionally so unpausing and clearing the
// allowlist persist.
func (r *GormControlRepository) Update(ctx context.Context, aggregate *control.Control) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LedgerControlDTO{}).
		Where("id = ?", singletonID).
		Updates(map[string]any{
			"paused":  dto.Paused,
			"oracles": dto.Oracles,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Owner(), aggregate)
	return nil
}

// Init creates the administrative state with the given owner if no row
// exists yet. A concurrent or earlier bootstrap wins: the stored owner is
// left untouched.
func (r *GormControlRepository) Init(ctx context.Context, owner kernel.UUID) error {
	aggregate, err := control.NewControl(owner)
	if err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

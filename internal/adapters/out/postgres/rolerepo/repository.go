package rolerepo

import (
	"context"
	"errors"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormRoleAssignmentRepository implements RoleAssignmentRepository using GORM.
type GormRoleAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRoleAssignmentRepository creates a new GORM role assignment repository.
func NewGormRoleAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormRoleAssignmentRepository {
	return &GormRoleAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new role assignment to the database.
func (r *GormRoleAssignmentRepository) Add(ctx context.Context, aggregate *access.RoleAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Update saves an existing role assignment to the database.
// The column is written unconditionally so a revoke down to an empty role
// list still persists.
func (r *GormRoleAssignmentRepository) Update(ctx context.Context, aggregate *access.RoleAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RoleAssignmentDTO{}).
		Where("user_id = ? AND delivery_id = ?", dto.UserID, dto.DeliveryID).
		Update("roles", dto.Roles)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Find retrieves the assignment for (userID, deliveryID).
// Returns (nil, nil) when the user holds no roles for the delivery.
func (r *GormRoleAssignmentRepository) Find(
	ctx context.Context, userID kernel.UUID, deliveryID kernel.UUID,
) (*access.RoleAssignment, error) {
	if err := errors.Join(userID.Validate(), deliveryID.Validate()); err != nil {
		return nil, err
	}

	var dto RoleAssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND delivery_id = ?", userID.Bytes(), deliveryID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// Package rolerepo persists role assignments keyed by (user, delivery).
// The role list is stored as a postgres integer array, preserving duplicates
// and ordering.
package rolerepo

import (
	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RoleAssignmentDTO represents the database structure for one role assignment.
type RoleAssignmentDTO struct {
	UserID     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Roles      pq.Int32Array `gorm:"type:integer[]"`
}

// TableName specifies the database table name for role assignments.
func (RoleAssignmentDTO) TableName() string {
	return "role_assignments"
}

// fromDomain converts a role assignment to its database representation.
func fromDomain(aggregate *access.RoleAssignment) RoleAssignmentDTO {
	roles := aggregate.Roles()
	stored := make(pq.Int32Array, 0, len(roles))
	for _, role := range roles {
		stored = append(stored, int32(role))
	}

	return RoleAssignmentDTO{
		UserID:     aggregate.UserID().Bytes(),
		DeliveryID: aggregate.DeliveryID().Bytes(),
		Roles:      stored,
	}
}

// toDomain converts a database DTO back into a role assignment.
func toDomain(dto RoleAssignmentDTO) (*access.RoleAssignment, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	roles := make([]access.Role, 0, len(dto.Roles))
	for _, role := range dto.Roles {
		roles = append(roles, access.Role(role))
	}

	return access.RestoreRoleAssignment(userID, deliveryID, roles)
}

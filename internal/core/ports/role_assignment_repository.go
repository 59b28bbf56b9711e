package ports

import (
	"context"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/kernel"
)

// RoleAssignmentRepository defines the persistence contract for role
// assignments keyed by (user, delivery). Keys are created on delivery
// initialization or first grant and never deleted.
type RoleAssignmentRepository interface {
	// Add persists a new role assignment.
	Add(ctx context.Context, aggregate *access.RoleAssignment) error

	// Update persists changes to an existing role assignment.
	Update(ctx context.Context, aggregate *access.RoleAssignment) error

	// Find retrieves the assignment for (userID, deliveryID).
	// Returns (nil, nil) when the user holds no roles for the delivery;
	// a missing key is an ordinary condition, not an error.
	Find(ctx context.Context, userID kernel.UUID, deliveryID kernel.UUID) (*access.RoleAssignment, error)
}

package access

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"
)

// MaxRolesPerAssignment is the hard cap on role entries per (user, delivery) key.
const MaxRolesPerAssignment = 5

var (
	// ErrRoleAssignmentIsNotConstructed is returned when a RoleAssignment was
	// not created through NewRoleAssignment or RestoreRoleAssignment.
	ErrRoleAssignmentIsNotConstructed = errors.New(
		"RoleAssignment must be created via NewRoleAssignment constructor")

	// ErrRoleCapacityExceeded is returned when granting into a full role set.
	ErrRoleCapacityExceeded = errs.NewCapacityExceededError("role set", MaxRolesPerAssignment)
)

// RoleAssignment is the aggregate holding the roles one user carries for one
// delivery. The role list is bounded and intentionally not deduplicated, so
// the same role may occupy several of the MaxRolesPerAssignment slots.
type RoleAssignment struct {
	userID     kernel.UUID
	deliveryID kernel.UUID
	roles      []Role

	isConstructed bool
}

// NewRoleAssignment creates an assignment for (userID, deliveryID) carrying
// the given initial roles.
func NewRoleAssignment(userID kernel.UUID, deliveryID kernel.UUID, roles ...Role) (*RoleAssignment, error) {
	if err := errors.Join(userID.Validate(), deliveryID.Validate()); err != nil {
		return nil, err
	}

	if len(roles) > MaxRolesPerAssignment {
		return nil, ErrRoleCapacityExceeded
	}

	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return nil, err
		}
	}

	return &RoleAssignment{
		userID:        userID,
		deliveryID:    deliveryID,
		roles:         append([]Role(nil), roles...),
		isConstructed: true,
	}, nil
}

// RestoreRoleAssignment reconstructs an assignment from persistence.
// It applies the same validation as NewRoleAssignment.
func RestoreRoleAssignment(userID kernel.UUID, deliveryID kernel.UUID, roles []Role) (*RoleAssignment, error) {
	return NewRoleAssignment(userID, deliveryID, roles...)
}

// Validate ensures the RoleAssignment was created through its constructor.
func (a *RoleAssignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrRoleAssignmentIsNotConstructed
	}
	return nil
}

// UserID returns the user identity of the assignment key.
func (a *RoleAssignment) UserID() kernel.UUID {
	return a.userID
}

// DeliveryID returns the delivery identity of the assignment key.
func (a *RoleAssignment) DeliveryID() kernel.UUID {
	return a.deliveryID
}

// Roles returns a copy of the role entries.
func (a *RoleAssignment) Roles() []Role {
	return append([]Role(nil), a.roles...)
}

// Has reports whether the assignment carries the given role.
func (a *RoleAssignment) Has(role Role) bool {
	for _, r := range a.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Grant appends a role entry. Duplicates are permitted; the set is bounded
// at MaxRolesPerAssignment entries.
func (a *RoleAssignment) Grant(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	if len(a.roles) >= MaxRolesPerAssignment {
		return ErrRoleCapacityExceeded
	}

	a.roles = append(a.roles, role)
	return nil
}

// Revoke removes every entry of the given role.
// Revoking a role not present is a no-op, not an error.
func (a *RoleAssignment) Revoke(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	kept := a.roles[:0]
	for _, r := range a.roles {
		if r != role {
			kept = append(kept, r)
		}
	}
	a.roles = kept
	return nil
}

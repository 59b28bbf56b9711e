package queries

import (
	"errors"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrHasRoleQueryIsNotConstructed = errors.New(
	"HasRoleQuery must be created via NewHasRoleQuery constructor",
)

// HasRoleQuery reports whether a user carries a role for one delivery.
// The global owner is considered to hold every role.
type HasRoleQuery struct { //nolint:recvcheck //using for validation
	user       kernel.UUID
	deliveryID kernel.UUID
	role       access.Role

	guard guard.ConstructorGuard
}

// NewHasRoleQuery creates a role membership query.
func NewHasRoleQuery(user kernel.UUID, deliveryID kernel.UUID, role access.Role) (HasRoleQuery, error) {
	query := HasRoleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUser(user),
		query.setDeliveryID(deliveryID),
		query.setRole(role),
	); err != nil {
		return HasRoleQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q HasRoleQuery) Validate() error {
	return q.guard.Validate(ErrHasRoleQueryIsNotConstructed)
}

// User returns the queried user identity.
func (q HasRoleQuery) User() kernel.UUID {
	return q.user
}

// DeliveryID returns the queried delivery identifier.
func (q HasRoleQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// Role returns the queried role.
func (q HasRoleQuery) Role() access.Role {
	return q.role
}

func (q *HasRoleQuery) setUser(user kernel.UUID) error {
	if err := user.Validate(); err != nil {
		return err
	}

	q.user = user
	return nil
}

func (q *HasRoleQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	q.deliveryID = deliveryID
	return nil
}

func (q *HasRoleQuery) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

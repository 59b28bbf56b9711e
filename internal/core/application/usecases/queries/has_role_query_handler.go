package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// HasRoleQueryHandler checks role membership through the read model.
// Applies the owner bypass before consulting the role assignments table.
type HasRoleQueryHandler struct {
	db *gorm.DB
}

// NewHasRoleQueryHandler creates a handler for role membership checks.
func NewHasRoleQueryHandler(db *gorm.DB) HasRoleQueryHandler {
	return HasRoleQueryHandler{db: db}
}

// Handle executes the membership check.
// An unknown delivery or user simply yields false.
func (h HasRoleQueryHandler) Handle(ctx context.Context, query HasRoleQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	isOwner, err := h.isOwner(ctx, query.User().Bytes())
	if err != nil {
		return false, err
	}
	if isOwner {
		return true, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT roles
		FROM role_assignments
		WHERE user_id = ? AND delivery_id = ?
	`, query.User().Bytes(), query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return false, rows.Err()
	}

	var roles pq.Int32Array
	if err = rows.Scan(&roles); err != nil {
		return false, err
	}

	if err = rows.Err(); err != nil {
		return false, err
	}

	for _, role := range roles {
		if int(role) == int(query.Role()) {
			return true, nil
		}
	}

	return false, nil
}

func (h HasRoleQueryHandler) isOwner(ctx context.Context, user uuid.UUID) (bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT owner_id = ?
		FROM ledger_controls
		LIMIT 1
	`, user).Rows()
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return false, rows.Err()
	}

	var isOwner bool
	if err = rows.Scan(&isOwner); err != nil {
		return false, err
	}

	return isOwner, rows.Err()
}

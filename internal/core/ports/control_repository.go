package ports

import (
	"context"

	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/kernel"
)

// ControlRepository defines the persistence contract for the singleton
// administrative state (owner, pause flag, oracle allowlist).
type ControlRepository interface {
	// Get retrieves the administrative state.
	// Returns an ObjectNotFoundError before Init has run.
	Get(ctx context.Context) (*control.Control, error)

	// GetForUpdate retrieves the administrative state and locks its row for
	// the duration of the enclosing transaction.
	GetForUpdate(ctx context.Context) (*control.Control, error)

	// Update persists changes to the administrative state.
	Update(ctx context.Context, aggregate *control.Control) error

	// Init creates the administrative state with the given owner if it does
	// not exist yet. The stored owner wins when the state already exists.
	Init(ctx context.Context, owner kernel.UUID) error
}

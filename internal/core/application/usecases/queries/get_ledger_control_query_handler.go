package queries

import (
	"context"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLedgerControlQueryHandler reads the owner identity and pause flag from
// the administrative state row.
type GetLedgerControlQueryHandler struct {
	db *gorm.DB
}

// NewGetLedgerControlQueryHandler creates a handler for administrative state queries.
func NewGetLedgerControlQueryHandler(db *gorm.DB) GetLedgerControlQueryHandler {
	return GetLedgerControlQueryHandler{db: db}
}

// Handle executes the administrative state query.
// Returns an ObjectNotFoundError before bootstrap.
func (h GetLedgerControlQueryHandler) Handle(
	ctx context.Context,
	query GetLedgerControlQuery,
) (*GetLedgerControlQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT owner_id, paused
		FROM ledger_controls
		LIMIT 1
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("ledgerControl", "singleton")
	}

	var (
		ownerID  uuid.UUID
		response GetLedgerControlQueryResponse
	)

	if err = rows.Scan(&ownerID, &response.Paused); err != nil {
		return nil, err
	}

	if response.Owner, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return nil, err
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &response, nil
}

// Package controlrepo persists the singleton administrative state: the owner
// identity, the pause flag, and the trusted-oracle allowlist.
package controlrepo

import (
	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// singletonID is the fixed primary key of the one administrative state row.
const singletonID = 1

// LedgerControlDTO represents the database structure for the administrative
// state. Oracles are stored as a text array of UUID strings, preserving
// duplicates.
type LedgerControlDTO struct {
	ID      int       `gorm:"primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid"`
	Paused  bool
	Oracles pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for the administrative state.
func (LedgerControlDTO) TableName() string {
	return "ledger_controls"
}

// fromDomain converts the administrative state to its database representation.
func fromDomain(aggregate *control.Control) LedgerControlDTO {
	oracles := aggregate.Oracles()
	stored := make(pq.StringArray, 0, len(oracles))
	for _, oracle := range oracles {
		stored = append(stored, oracle.String())
	}

	return LedgerControlDTO{
		ID:      singletonID,
		OwnerID: aggregate.Owner().Bytes(),
		Paused:  aggregate.Paused(),
		Oracles: stored,
	}
}

// toDomain converts a database DTO back into the administrative state.
func toDomain(dto LedgerControlDTO) (*control.Control, error) {
	owner, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	oracles := make([]kernel.UUID, 0, len(dto.Oracles))
	for _, value := range dto.Oracles {
		oracle, parseErr := kernel.UUIDFromString(value)
		if parseErr != nil {
			return nil, parseErr
		}
		oracles = append(oracles, oracle)
	}

	return control.RestoreControl(owner, dto.Paused, oracles)
}

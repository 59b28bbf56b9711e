// Package commands contains business operations that modify ledger state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// authorization, and persistence. Every check completes before any state
// write, so a failure never leaves a partial mutation behind.
package commands

import (
	"context"

	"trackledger/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// TrackingEventRepoFactory provides access to the event log repository within a transaction.
	TrackingEventRepoFactory interface {
		TrackingEventRepository() ports.TrackingEventRepository
	}

	// RoleAssignmentRepoFactory provides access to the role assignment repository within a transaction.
	RoleAssignmentRepoFactory interface {
		RoleAssignmentRepository() ports.RoleAssignmentRepository
	}

	// ControlRepoFactory provides access to the administrative state repository within a transaction.
	ControlRepoFactory interface {
		ControlRepository() ports.ControlRepository
	}

	// ControlUoW manages transactions for operations touching only the
	// administrative singleton (pause flag, oracle allowlist).
	ControlUoW interface {
		TxManager
		ControlRepoFactory
	}

	// ControlUoWFactory creates new control unit of work instances.
	ControlUoWFactory interface {
		Create() ControlUoW
	}

	// RegistryUoW manages transactions for operations on delivery records and
	// role assignments that never touch the event log (creation, role grants).
	RegistryUoW interface {
		TxManager
		DeliveryRepoFactory
		RoleAssignmentRepoFactory
		ControlRepoFactory
	}

	// RegistryUoWFactory creates new registry unit of work instances.
	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// LedgerUoW manages transactions spanning the delivery record and its
	// event log. Used by tracking operations, which must persist the record
	// update and the appended entry together.
	LedgerUoW interface {
		TxManager
		DeliveryRepoFactory
		TrackingEventRepoFactory
		RoleAssignmentRepoFactory
		ControlRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}
)

// Package services provides domain services that coordinate business rules
// across multiple aggregates of the tracking ledger.
//
// The package includes:
//   - AccessPolicy: A domain service resolving capability checks across the
//     administrative Control aggregate and per-delivery RoleAssignments
//
// Domain services implement logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services

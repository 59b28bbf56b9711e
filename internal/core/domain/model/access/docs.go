// Package access provides the per-delivery capability model of the tracking
// ledger. It implements the RoleAssignment aggregate: a small, bounded set of
// roles granted to one user for one delivery.
//
// The package includes:
//   - Role: A closed enumeration of grantable capabilities
//   - RoleAssignment: The aggregate keyed by (user, delivery) holding at most
//     MaxRolesPerAssignment role entries
//
// Key business rules:
//   - Four assignments are created together with every delivery (creator gets
//     admin, operator/supplier/recipient their matching roles)
//   - A role set never exceeds MaxRolesPerAssignment entries
//   - Granting does not deduplicate; revoking an absent role is a no-op
//   - The (user, delivery) key itself is never deleted
package access

package services

import (
	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/kernel"
)

// AccessPolicy is a domain service resolving capability checks.
//
// Two rules hold system-wide:
//   - The global owner bypasses every role check, for every delivery
//   - Tracking updates are additionally authorized by membership in the
//     trusted-oracle allowlist, which also marks the update as verified
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// HasRole reports whether the user carries the role for the assignment's
// delivery. The owner bypass applies first; assignment may be nil when the
// user holds no roles for the delivery.
func (AccessPolicy) HasRole(
	ctrl *control.Control,
	assignment *access.RoleAssignment,
	user kernel.UUID,
	role access.Role,
) bool {
	if ctrl != nil && ctrl.IsOwner(user) {
		return true
	}

	return assignment != nil && assignment.Has(role)
}

// CanTrack reports whether the caller may append a tracking event: either by
// carrying the operator role (owner bypass included) or by being in the
// trusted-oracle allowlist. The second return value is the oracleVerified
// stamp for the entry, true iff the caller is allowlisted.
func (p AccessPolicy) CanTrack(
	ctrl *control.Control,
	assignment *access.RoleAssignment,
	caller kernel.UUID,
) (allowed bool, oracleVerified bool) {
	oracleVerified = ctrl != nil && ctrl.IsOracle(caller)
	allowed = oracleVerified || p.HasRole(ctrl, assignment, caller, access.RoleOperator)
	return allowed, oracleVerified
}

package access

import (
	"fmt"

	"trackledger/internal/pkg/errs"
)

// Role represents a named capability grantable per (user, delivery).
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleOperator authorizes tracking updates and forced failures.
	RoleOperator

	// RoleOracle marks an automated update source at the delivery level.
	RoleOracle

	// RoleAdmin authorizes role grants and revocations for the delivery.
	RoleAdmin

	// RoleSupplier identifies the party handing over the payload.
	RoleSupplier

	// RoleRecipient identifies the party receiving the payload.
	RoleRecipient
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "unknown",
		RoleOperator:  "operator",
		RoleOracle:    "oracle",
		RoleAdmin:     "admin",
		RoleSupplier:  "supplier",
		RoleRecipient: "recipient",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleOperator:  "operator",
		RoleOracle:    "oracle",
		RoleAdmin:     "admin",
		RoleSupplier:  "supplier",
		RoleRecipient: "recipient",
	}
}

// ParseRole converts the wire representation of a role into the closed
// enumeration. Returns a ValueIsInvalidError for anything outside the set.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is a member of the closed enumeration.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase wire name of the role.
// It implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

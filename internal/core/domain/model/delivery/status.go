package delivery

import (
	"fmt"

	"trackledger/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// The lifecycle is deliberately permissive: any non-terminal status may be
// followed by any other status, including skipping stages. The only hard rule
// is that terminal statuses (Delivered, Failed, Cancelled) have no outgoing
// transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every delivery.
	Pending

	// Assigned indicates the delivery has been matched to an operator.
	Assigned

	// InTransit indicates the payload is moving.
	InTransit

	// Delayed indicates the delivery is running behind its expected arrival.
	Delayed

	// Arrived indicates the payload reached its destination but was not
	// yet handed over.
	Arrived

	// Delivered is the terminal success status.
	Delivered

	// Failed is the terminal failure status, reached via a tracking update
	// or a forced failure.
	Failed

	// Cancelled is the terminal status for abandoned deliveries.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in-transit",
		Delayed:   "delayed",
		Arrived:   "arrived",
		Delivered: "delivered",
		Failed:    "failed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in-transit",
		Delayed:   "delayed",
		Arrived:   "arrived",
		Delivered: "delivered",
		Failed:    "failed",
		Cancelled: "cancelled",
	}
}

// ParseStatus converts the wire representation of a status into the closed
// enumeration. Returns a ValueIsInvalidError for anything outside the set.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the closed enumeration.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Cancelled
}

// String returns the lowercase wire name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

package control

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"
)

// MaxTrustedOracles is the hard cap on the global trusted-oracle allowlist.
const MaxTrustedOracles = 10

var (
	// ErrControlIsNotConstructed is returned when a Control instance was not
	// created through NewControl or RestoreControl.
	ErrControlIsNotConstructed = errors.New("Control must be created via NewControl constructor")

	// ErrLedgerPaused is returned by gated operations while the pause flag is set.
	ErrLedgerPaused = errors.New("ledger is paused")

	// ErrOracleCapacityExceeded is returned when adding to a full allowlist.
	ErrOracleCapacityExceeded = errs.NewCapacityExceededError("oracle registry", MaxTrustedOracles)
)

// Control is the singleton aggregate holding global administrative state:
// the owner identity, the pause flag, and the trusted-oracle allowlist.
type Control struct {
	owner   kernel.UUID
	paused  bool
	oracles []kernel.UUID

	isConstructed bool
}

// NewControl creates the administrative state at bootstrap with the given
// owner, unpaused, with an empty allowlist.
func NewControl(owner kernel.UUID) (*Control, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	return &Control{
		owner:         owner,
		isConstructed: true,
	}, nil
}

// RestoreControl reconstructs the administrative state from persistence.
func RestoreControl(owner kernel.UUID, paused bool, oracles []kernel.UUID) (*Control, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	if len(oracles) > MaxTrustedOracles {
		return nil, ErrOracleCapacityExceeded
	}

	for _, oracle := range oracles {
		if err := oracle.Validate(); err != nil {
			return nil, err
		}
	}

	return &Control{
		owner:         owner,
		paused:        paused,
		oracles:       append([]kernel.UUID(nil), oracles...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Control instance was created through its constructor.
func (c *Control) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrControlIsNotConstructed
	}
	return nil
}

// Owner returns the global owner identity.
func (c *Control) Owner() kernel.UUID {
	return c.owner
}

// Paused reports whether the global pause flag is set.
func (c *Control) Paused() bool {
	return c.paused
}

// Oracles returns a copy of the trusted-oracle allowlist.
func (c *Control) Oracles() []kernel.UUID {
	return append([]kernel.UUID(nil), c.oracles...)
}

// IsOwner reports whether the identity is the global owner.
func (c *Control) IsOwner(identity kernel.UUID) bool {
	return c.owner.IsEqual(identity)
}

// IsOracle reports whether the identity is in the trusted-oracle allowlist.
func (c *Control) IsOracle(identity kernel.UUID) bool {
	for _, oracle := range c.oracles {
		if oracle.IsEqual(identity) {
			return true
		}
	}
	return false
}

// SetPaused toggles the global pause flag. Owner only; the flag itself
// remains owner-accessible at all times, paused or not.
func (c *Control) SetPaused(caller kernel.UUID, paused bool) error {
	if !c.IsOwner(caller) {
		return errs.NewUnauthorizedError(caller.String(), "set pause flag")
	}

	c.paused = paused
	return nil
}

// AddOracle appends an identity to the trusted-oracle allowlist.
// Owner only; the list is bounded and not deduplicated.
func (c *Control) AddOracle(caller kernel.UUID, identity kernel.UUID) error {
	if !c.IsOwner(caller) {
		return errs.NewUnauthorizedError(caller.String(), "add oracle")
	}

	if err := identity.Validate(); err != nil {
		return err
	}

	if len(c.oracles) >= MaxTrustedOracles {
		return ErrOracleCapacityExceeded
	}

	c.oracles = append(c.oracles, identity)
	return nil
}

// RemoveOracle removes every allowlist entry matching the identity.
// Owner only; removing an absent identity is a no-op, not an error.
func (c *Control) RemoveOracle(caller kernel.UUID, identity kernel.UUID) error {
	if !c.IsOwner(caller) {
		return errs.NewUnauthorizedError(caller.String(), "remove oracle")
	}

	kept := c.oracles[:0]
	for _, oracle := range c.oracles {
		if !oracle.IsEqual(identity) {
			kept = append(kept, oracle)
		}
	}
	c.oracles = kept
	return nil
}

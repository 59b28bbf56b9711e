// Package control provides the process-wide administrative state of the
// tracking ledger as a single aggregate: the global owner identity, the pause
// flag, and the trusted-oracle allowlist.
//
// Key business rules:
//   - The owner is fixed at bootstrap and bypasses every role check system-wide
//   - Only the owner may pause/unpause or mutate the oracle allowlist
//   - The allowlist holds at most MaxTrustedOracles entries, without deduplication
//   - The pause flag gates delivery creation and event logging, but not role
//     registry mutations (asymmetry preserved from the original system)
package control

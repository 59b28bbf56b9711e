// Package delivery provides domain entities and business logic for the
// delivery ledger. It implements the Delivery aggregate root with its
// status lifecycle and the append-only tracking event log.
//
// The package includes:
//   - Delivery: The aggregate root that manages delivery identity, lifecycle, and sequencing
//   - Status: A closed enumeration of lifecycle states with a terminal subset
//   - TrackingEvent: An immutable, sequence-numbered update record attached to a delivery
//
// Key business rules:
//   - A delivery is created in the pending status with sequence 0
//   - Any non-terminal status may be followed by any other status, including skipping stages
//   - Reaching a terminal status (delivered, failed, cancelled) freezes the record forever
//   - The event log holds at most MaxTrackingEvents entries per delivery, strictly sequenced
//   - A forced failure completes the delivery without appending an event
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery

// Package kernel provides core domain primitives for the tracking ledger.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Fingerprint: A fixed-size content hash identifying a delivery payload
//   - GeoPoint: A value object carrying the reported coordinates of a tracking update
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel

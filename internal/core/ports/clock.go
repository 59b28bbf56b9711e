package ports

// Clock supplies the logical time stamped onto records and event log entries.
// Implementations must be monotonically non-decreasing within a process.
type Clock interface {
	Now() uint64
}

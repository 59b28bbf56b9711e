// Package sysclock adapts wall-clock time to the logical clock used on
// delivery records and event log entries.
package sysclock

import "time"

// SystemClock reports the current unix time in seconds. Within a process the
// value is monotonically non-decreasing at second granularity.
type SystemClock struct{}

// NewSystemClock creates a new SystemClock instance.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current unix time in seconds.
func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

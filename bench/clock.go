package bench

import "time"

// Clock supplies the readings that bracket a timed region.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock. Values returned by time.Now carry
// a monotonic reading, so the difference of two of them is unaffected by
// wall-clock adjustments.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

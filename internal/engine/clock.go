package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is used by the Resolver to sample the current Instant.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system wall clock.
type RealClock struct{}

// Now returns the current instant in UTC.
// UTC() also strips the monotonic reading, leaving a plain wall-clock instant.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

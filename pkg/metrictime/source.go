package metrictime

import "time"

// Source provides the wall-clock reading a Time is sampled from.
// Implementations may be real (the system clock, an NTP-corrected clock) or
// deterministic for tests. Anything that samples "now" should take a Source
// instead of calling time.Now() directly so tests can control time.
type Source interface {
	// Now returns the current time.
	Now() time.Time
}

// systemSource reads the process-local system clock.
type systemSource struct{}

// Now returns the current system time.
func (systemSource) Now() time.Time {
	return time.Now()
}

// System returns the Source backed by the system clock.
func System() Source {
	return systemSource{}
}

// Ensure systemSource implements Source at compile time.
var _ Source = systemSource{}

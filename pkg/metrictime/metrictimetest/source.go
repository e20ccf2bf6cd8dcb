// Package metrictimetest provides test doubles for the metrictime package.
package metrictimetest

import (
	"sync"
	"time"

	"github.com/reuschj/metric-time/pkg/metrictime"
)

// FakeSource is a deterministic, advanceable time source for tests. Use
// Advance/Set to control time progression instead of creating new source
// instances.
type FakeSource struct {
	mu      sync.Mutex
	current time.Time
}

// NewFakeSource creates a FakeSource set to the given time.
func NewFakeSource(t time.Time) *FakeSource {
	return &FakeSource{current: t}
}

// Now returns the fake source's current time.
func (s *FakeSource) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Advance moves the fake source forward by the given duration.
func (s *FakeSource) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.Add(d)
}

// Set changes the fake source to a specific time.
func (s *FakeSource) Set(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = t
}

// Ensure FakeSource implements metrictime.Source at compile time.
var _ metrictime.Source = (*FakeSource)(nil)

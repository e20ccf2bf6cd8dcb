package clock

import (
	"log/slog"
	"time"

	"github.com/reuschj/metric-time/pkg/metrictime"
)

// Settings configures emission: which base to emit in, how often to tick,
// and an optional cap on the number of ticks. The zero value of every field
// means its default, so Settings{} is usable as-is.
type Settings struct {
	// MaxEvents caps the number of ticks; 0 means unlimited.
	MaxEvents uint64
	// Interval is the pause between ticks; non-positive values fall back
	// to one second.
	Interval time.Duration
	// Kind is the base emitted times are converted to.
	Kind metrictime.Kind
	// Source supplies the sampled wall-clock reading; nil means the
	// system clock.
	Source metrictime.Source
	// Logger receives producer diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

// DefaultSettings returns the canonical defaults: unlimited ticks, one
// second apart, 24-hour times from the system clock.
func DefaultSettings() Settings {
	return Settings{Interval: time.Second}
}

// WithMaxEvents returns a copy with the tick cap set.
func (s Settings) WithMaxEvents(n uint64) Settings {
	s.MaxEvents = n
	return s
}

// ClearMaxEvents returns a copy with no tick cap.
func (s Settings) ClearMaxEvents() Settings {
	s.MaxEvents = 0
	return s
}

// WithInterval returns a copy with the tick interval set.
func (s Settings) WithInterval(d time.Duration) Settings {
	s.Interval = d
	return s
}

// WithKind returns a copy emitting times in the given base.
func (s Settings) WithKind(k metrictime.Kind) Settings {
	s.Kind = k
	return s
}

// WithSource returns a copy sampling from the given source.
func (s Settings) WithSource(src metrictime.Source) Settings {
	s.Source = src
	return s
}

// WithLogger returns a copy logging through the given logger.
func (s Settings) WithLogger(l *slog.Logger) Settings {
	s.Logger = l
	return s
}

// normalized fills zero fields with their defaults so the producer never
// re-checks them.
func (s Settings) normalized() Settings {
	if s.Interval <= 0 {
		s.Interval = time.Second
	}
	if s.Source == nil {
		s.Source = metrictime.System()
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	return s
}

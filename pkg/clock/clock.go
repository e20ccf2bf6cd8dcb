// Package clock emits metrictime values on a fixed cadence. An Emitter owns
// the single-producer tick loop and its signal-based control protocol; a
// Clock layers cached observation state (last emitted time, running tick
// count) and a start/stop lifecycle on top of one.
package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/reuschj/metric-time/pkg/metrictime"
)

// Clock wraps an Emitter with state readable from any goroutine while the
// producer runs. Each piece of state lives in its own mutex-guarded cell,
// so reads of different cells are individually consistent but not atomic
// with each other: Time and Count observed back to back may be one tick out
// of step.
//
// Configuration (New, Setup, SetKind, SetInterval) is not synchronized and
// belongs on the goroutine that starts the clock; a running producer keeps
// the settings it was started with.
type Clock struct {
	settings Settings

	emitterMu sync.Mutex
	emitter   *Emitter

	timeMu sync.Mutex
	last   *metrictime.Time

	subMu sync.Mutex
	sub   *Subscription

	countMu sync.Mutex
	count   uint64
}

// New returns a stopped Clock with default settings.
func New() *Clock {
	return &Clock{settings: DefaultSettings()}
}

// Setup replaces the clock's settings and returns the clock for chaining.
func (c *Clock) Setup(s Settings) *Clock {
	c.settings = s
	return c
}

// SetKind sets the base emitted times are converted to.
func (c *Clock) SetKind(k metrictime.Kind) *Clock {
	c.settings = c.settings.WithKind(k)
	return c
}

// SetInterval sets the pause between ticks.
func (c *Clock) SetInterval(d time.Duration) *Clock {
	c.settings = c.settings.WithInterval(d)
	return c
}

// Settings returns the clock's current settings.
func (c *Clock) Settings() Settings {
	return c.settings
}

// Kind returns the configured time base.
func (c *Clock) Kind() metrictime.Kind {
	return c.settings.Kind
}

// Interval returns the configured tick interval.
func (c *Clock) Interval() time.Duration {
	return c.settings.Interval
}

// Time returns the most recently emitted time. ok is false only before the
// first tick lands; the cache survives Stop and restarts.
func (c *Clock) Time() (metrictime.Time, bool) {
	c.timeMu.Lock()
	defer c.timeMu.Unlock()
	if c.last == nil {
		return metrictime.Time{}, false
	}
	return *c.last, true
}

// Count returns the number of ticks observed since the clock was
// constructed. Stop does not reset it, so it accumulates across restarts.
func (c *Clock) Count() uint64 {
	c.countMu.Lock()
	defer c.countMu.Unlock()
	return c.count
}

// Start builds a fresh emitter from the clock's settings and begins
// ticking. On every tick the given callback (which may be nil) runs first,
// then the clock caches the emitted time and increments the tick count.
// Start fails with ErrSetEmitter when the clock is already running.
func (c *Clock) Start(onEmit Callback) (*Subscription, error) {
	c.emitterMu.Lock()
	if c.emitter != nil {
		c.emitterMu.Unlock()
		return nil, fmt.Errorf("%w: clock already running", ErrSetEmitter)
	}
	emitter := NewEmitter().Setup(c.settings)
	c.emitter = &emitter
	c.emitterMu.Unlock()

	sub, _ := emitter.Emit(func(t metrictime.Time, tc Context) {
		if onEmit != nil {
			onEmit(t, tc)
		}
		c.timeMu.Lock()
		c.last = &t
		c.timeMu.Unlock()
		c.countMu.Lock()
		c.count++
		c.countMu.Unlock()
	})

	c.subMu.Lock()
	if c.sub != nil {
		c.subMu.Unlock()
		// Lost the subscription cell to a concurrent Start; stop the
		// fresh producer rather than leak it.
		_ = sub.Unsubscribe()
		c.emitterMu.Lock()
		c.emitter = nil
		c.emitterMu.Unlock()
		return nil, fmt.Errorf("%w: subscription cell already occupied", ErrSetTime)
	}
	c.sub = sub
	c.subMu.Unlock()

	return sub, nil
}

// Stop signals the producer to stop and returns the last emitted time, or a
// freshly sampled reading when no tick has landed yet. The producer only
// observes the signal once its current sleep elapses, so it outlives Stop
// by up to one interval; wait on the subscription's Done channel to join
// it. Stop fails with ErrUnsubscribe when the clock is not running or the
// producer already exited (a tick cap was reached). Either way the cells
// are cleared and the clock may be started again; the tick count carries
// over.
func (c *Clock) Stop() (metrictime.Time, error) {
	c.subMu.Lock()
	sub := c.sub
	c.sub = nil
	c.subMu.Unlock()

	c.emitterMu.Lock()
	c.emitter = nil
	c.emitterMu.Unlock()

	if sub == nil {
		return metrictime.Time{}, fmt.Errorf("%w: clock is not running", ErrUnsubscribe)
	}
	if err := sub.Unsubscribe(); err != nil {
		return metrictime.Time{}, fmt.Errorf("%w: %w", ErrUnsubscribe, err)
	}
	if last, ok := c.Time(); ok {
		return last, nil
	}
	return metrictime.FromTime(c.settings.normalized().Source.Now()), nil
}

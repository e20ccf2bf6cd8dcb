package clock

import (
	"log/slog"
	"time"

	"github.com/reuschj/metric-time/pkg/metrictime"
)

// Callback receives each emitted time together with its tick context. It
// runs synchronously on the producer goroutine, so time spent in the
// callback directly delays the next tick.
type Callback func(metrictime.Time, Context)

// Context describes one tick: its zero-based index and the normalized
// settings the producer runs with.
type Context struct {
	Index    uint64
	Settings Settings
}

// controlBuffer sizes the control channel. Self-driving needs one slot; the
// rest absorb unsubscribes sent while the producer sleeps. A full buffer
// therefore always holds at least one queued unsubscribe, which is why a
// dropped continue signal can never stall the loop.
const controlBuffer = 4

// Emitter produces times on a fixed cadence. The Emitter itself is inert
// configuration; each Emit call spawns one independent producer goroutine.
type Emitter struct {
	Settings Settings
}

// NewEmitter returns an Emitter with default settings.
func NewEmitter() Emitter {
	return Emitter{Settings: DefaultSettings()}
}

// Setup returns a copy of the emitter with the given settings.
func (e Emitter) Setup(s Settings) Emitter {
	e.Settings = s
	return e
}

// Emit spawns a producer goroutine and returns the Subscription that stops
// it plus a channel closed when the producer exits (the same channel as
// Subscription.Done).
//
// Each tick the producer receives from the control channel, samples the
// source, converts the reading to the configured kind, invokes onEmit,
// sleeps for the interval, and sends itself SignalContinue. The self-sent
// signal is the only driver of forward progress, so tick indices are
// strictly increasing from 0 with no gaps. The control channel is FIFO: an
// unsubscribe enqueued while the producer sleeps wins over the continue
// signal sent on wake.
func (e Emitter) Emit(onEmit Callback) (*Subscription, <-chan struct{}) {
	settings := e.Settings.normalized()
	if onEmit == nil {
		onEmit = func(metrictime.Time, Context) {}
	}

	ctrl := make(chan Signal, controlBuffer)
	done := make(chan struct{})
	sub := newSubscription(ctrl, done)
	logger := settings.Logger.With(slog.String("subscription", sub.ID()))

	go func() {
		defer close(done)
		var count uint64
		for {
			index := count
			signal, ok := <-ctrl
			if !ok || signal == SignalUnsubscribe {
				logger.Debug("producer unsubscribed", slog.Uint64("ticks", count))
				return
			}
			if settings.MaxEvents > 0 && count >= settings.MaxEvents {
				logger.Debug("producer reached max events", slog.Uint64("ticks", count))
				return
			}

			emitted := metrictime.FromTime(settings.Source.Now()).To(settings.Kind)
			onEmit(emitted, Context{Index: index, Settings: settings})

			time.Sleep(settings.Interval)
			count++
			select {
			case ctrl <- SignalContinue:
			default:
				// Full buffer already holds queued unsubscribes; the
				// next receive ends the loop.
				logger.Warn("control channel full, dropping continue signal")
			}
		}
	}()

	// Buffered send; cannot block before the producer runs.
	ctrl <- SignalStart

	return sub, done
}

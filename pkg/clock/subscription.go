package clock

import (
	"fmt"

	"github.com/google/uuid"
)

// Subscription is the caller's handle on a running producer. It holds the
// send half of the control channel and a channel that closes when the
// producer exits. Subscriptions are safe to share across goroutines.
type Subscription struct {
	id   string
	ctrl chan<- Signal
	done <-chan struct{}
}

func newSubscription(ctrl chan<- Signal, done <-chan struct{}) *Subscription {
	return &Subscription{id: uuid.NewString(), ctrl: ctrl, done: done}
}

// ID returns the subscription's unique identifier, used to correlate
// producer log lines.
func (s *Subscription) ID() string {
	return s.id
}

// Done returns a channel closed when the producer goroutine exits. Wait on
// it to join the producer before asserting anything about goroutines.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Unsubscribe asks the producer to stop. The producer only observes the
// signal once its current sleep elapses, so stop latency is bounded by the
// configured interval. Unsubscribe never blocks past producer exit: it
// fails with ErrStopped when the producer is already gone (stopped earlier,
// or finished by a tick cap).
func (s *Subscription) Unsubscribe() error {
	// Check exit first: a buffered send can still succeed after the
	// producer is gone, and select would pick between the two at random.
	select {
	case <-s.done:
		return fmt.Errorf("%w: producer already exited", ErrStopped)
	default:
	}
	select {
	case s.ctrl <- SignalUnsubscribe:
		return nil
	case <-s.done:
		return fmt.Errorf("%w: producer already exited", ErrStopped)
	}
}

package clock

import "errors"

// Sentinel errors for clock and emitter lifecycle failures. Match with
// errors.Is() - never compare error strings.
var (
	// ErrNoTimeSet reports a read of the cached time before any tick has
	// landed. The read accessors prefer comma-ok returns and Stop falls
	// back to sampling the source, so it is part of the taxonomy more
	// than of the control flow.
	ErrNoTimeSet = errors.New("no time set")

	// ErrSetTime reports a failed store into one of the clock's cells.
	ErrSetTime = errors.New("could not set time")

	// ErrSetEmitter reports Start on a clock whose emitter cell is
	// occupied, i.e. the clock is already running.
	ErrSetEmitter = errors.New("could not set time emitter")

	// ErrUnsubscribe reports Stop on a clock that is not running or whose
	// producer could not be signalled.
	ErrUnsubscribe = errors.New("could not unsubscribe")

	// ErrStopped reports an Unsubscribe after the producer has already
	// exited.
	ErrStopped = errors.New("emitter already stopped")
)

package clock

// Signal drives the emitter's control channel. The producer is started with
// SignalStart, keeps itself alive by sending SignalContinue after every
// tick, and exits when it reads SignalUnsubscribe. A closed control channel
// reads as an unsubscribe.
type Signal uint8

const (
	// SignalStart begins the first tick after Emit spawns the producer.
	SignalStart Signal = iota
	// SignalContinue drives the next iteration; the producer sends it to
	// itself at the end of each tick.
	SignalContinue
	// SignalUnsubscribe stops the producer.
	SignalUnsubscribe
)

// String returns the signal name for logs.
func (s Signal) String() string {
	switch s {
	case SignalStart:
		return "start"
	case SignalContinue:
		return "continue"
	case SignalUnsubscribe:
		return "unsubscribe"
	default:
		return "unknown"
	}
}

package metrictime

import "errors"

// Sentinel errors for time validation and parsing. One range error per
// field and direction so callers can tell exactly which component failed
// and how. Match with errors.Is() - never compare error strings.
var (
	// Range errors, in the order Bounds.Check tests fields
	ErrHoursLow        = errors.New("hours under bounds")
	ErrHoursHigh       = errors.New("hours over bounds")
	ErrMinutesLow      = errors.New("minutes under bounds")
	ErrMinutesHigh     = errors.New("minutes over bounds")
	ErrSecondsLow      = errors.New("seconds under bounds")
	ErrSecondsHigh     = errors.New("seconds over bounds")
	ErrNanosecondsLow  = errors.New("nanoseconds under bounds")
	ErrNanosecondsHigh = errors.New("nanoseconds over bounds")

	// Parse errors
	ErrUnknownKind   = errors.New("unknown time kind")
	ErrMalformedTime = errors.New("malformed time string")
)

package metrictime

import "fmt"

// Span is a half-open interval [Start, End) over a single component.
type Span struct {
	Start uint32
	End   uint32
}

// Contains reports whether v lies within the span.
func (s Span) Contains(v uint32) bool {
	return v >= s.Start && v < s.End
}

// Len returns the number of values the span covers.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Bounds holds the valid span for each component of a reading in some base.
type Bounds struct {
	Hours       Span
	Minutes     Span
	Seconds     Span
	Nanoseconds Span
}

// Bounds returns the valid component spans for this kind:
//
//	Base24: hours [0,24), minutes [0,60),  seconds [0,60)
//	Base12: hours [1,13), minutes [0,60),  seconds [0,60)
//	Base10: hours [0,10), minutes [0,100), seconds [0,100)
//
// Nanoseconds are [0, 1e9) in every base.
func (k Kind) Bounds() Bounds {
	ns := Span{Start: 0, End: NanosPerSecond}
	switch k.base {
	case base10:
		return Bounds{
			Hours:       Span{Start: 0, End: 10},
			Minutes:     Span{Start: 0, End: 100},
			Seconds:     Span{Start: 0, End: 100},
			Nanoseconds: ns,
		}
	case base12:
		return Bounds{
			Hours:       Span{Start: 1, End: 13},
			Minutes:     Span{Start: 0, End: 60},
			Seconds:     Span{Start: 0, End: 60},
			Nanoseconds: ns,
		}
	default:
		return Bounds{
			Hours:       Span{Start: 0, End: 24},
			Minutes:     Span{Start: 0, End: 60},
			Seconds:     Span{Start: 0, End: 60},
			Nanoseconds: ns,
		}
	}
}

// Check validates a reading against the bounds. Fields are tested in a
// fixed order (hours, minutes, seconds, nanoseconds) and the first field
// out of range decides the error, low before high. A nil return means every
// field passed.
func (b Bounds) Check(c Components) error {
	if err := checkSpan(b.Hours, uint32(c.Hours), ErrHoursLow, ErrHoursHigh); err != nil {
		return err
	}
	if err := checkSpan(b.Minutes, uint32(c.Minutes), ErrMinutesLow, ErrMinutesHigh); err != nil {
		return err
	}
	if err := checkSpan(b.Seconds, uint32(c.Seconds), ErrSecondsLow, ErrSecondsHigh); err != nil {
		return err
	}
	return checkSpan(b.Nanoseconds, c.Nanoseconds, ErrNanosecondsLow, ErrNanosecondsHigh)
}

func checkSpan(s Span, v uint32, low, high error) error {
	if s.Contains(v) {
		return nil
	}
	if v < s.Start {
		return fmt.Errorf("%w: %d not in [%d, %d)", low, v, s.Start, s.End)
	}
	return fmt.Errorf("%w: %d not in [%d, %d)", high, v, s.Start, s.End)
}

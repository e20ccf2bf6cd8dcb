package metrictime

import (
	"fmt"
	"time"
)

// Time pairs a reading with the kind it is expressed in. Values are
// immutable and always in range for their kind: the pairing is validated
// once at construction and never re-checked.
type Time struct {
	components Components
	kind       Kind
}

// NewTime validates the reading against the kind's bounds and returns the
// pair. The error is one of the Err*Low / Err*High range sentinels.
func NewTime(c Components, k Kind) (Time, error) {
	if err := k.Bounds().Check(c); err != nil {
		return Time{}, err
	}
	return Time{components: c, kind: k}, nil
}

// NewBase24 constructs a 24-hour Time.
func NewBase24(c Components) (Time, error) {
	return NewTime(c, Base24())
}

// NewBase12 constructs a 12-hour Time in the given period.
func NewBase12(c Components, p Period) (Time, error) {
	return NewTime(c, Base12(p))
}

// NewBase10 constructs a metric Time.
func NewBase10(c Components) (Time, error) {
	return NewTime(c, Base10())
}

// mustTime wraps construction that cannot fail for in-range inputs. A panic
// here means conversion arithmetic produced an out-of-range reading, which
// is a defect in this package, not a caller error.
func mustTime(c Components, k Kind) Time {
	t, err := NewTime(c, k)
	if err != nil {
		panic(fmt.Sprintf("metrictime: %s reading %s: %v", k, c, err))
	}
	return t
}

// Now samples the system clock and returns the current local time of day as
// a 24-hour Time. Use FromTime with a Source for injectable time.
func Now() Time {
	return FromTime(System().Now())
}

// FromTime maps the wall-clock part of t (hour, minute, second, nanosecond
// in t's location, date discarded) onto a 24-hour Time.
func FromTime(t time.Time) Time {
	return mustTime(Components{
		Hours:       uint8(t.Hour()),
		Minutes:     uint8(t.Minute()),
		Seconds:     uint8(t.Second()),
		Nanoseconds: uint32(t.Nanosecond()),
	}, Base24())
}

// Components returns the raw reading.
func (t Time) Components() Components {
	return t.components
}

// Kind returns the base the reading is expressed in.
func (t Time) Kind() Kind {
	return t.kind
}

// Hours returns the hours component.
func (t Time) Hours() uint8 { return t.components.Hours }

// Minutes returns the minutes component.
func (t Time) Minutes() uint8 { return t.components.Minutes }

// Seconds returns the seconds component.
func (t Time) Seconds() uint8 { return t.components.Seconds }

// Nanoseconds returns the nanoseconds component.
func (t Time) Nanoseconds() uint32 { return t.components.Nanoseconds }

// To converts the value to another kind, preserving the instant of day it
// represents. Converting within the value's own base returns it unchanged,
// so the period of a 12-hour target is never consulted: it is kept as-is on
// identity and derived from the instant otherwise. The 12-hour and metric
// bases never convert directly; they pivot through the 24-hour clock.
func (t Time) To(k Kind) Time {
	if k.base == t.kind.base {
		return t
	}
	switch t.kind.base {
	case base10:
		c24 := base10ToBase24(t.components)
		if k.base == base12 {
			c12, p := base24ToBase12(c24)
			return mustTime(c12, Base12(p))
		}
		return mustTime(c24, Base24())
	case base12:
		p, _ := t.kind.Period()
		c24 := base12ToBase24(t.components, p)
		if k.base == base10 {
			return mustTime(base24ToBase10(c24), Base10())
		}
		return mustTime(c24, Base24())
	default:
		if k.base == base10 {
			return mustTime(base24ToBase10(t.components), Base10())
		}
		c12, p := base24ToBase12(t.components)
		return mustTime(c12, Base12(p))
	}
}

// Rotations derives the clock-hand dial angles for the reading in its own
// kind.
func (t Time) Rotations() Rotations {
	return NewRotations(t.components, t.kind)
}

// Compare orders by reading first (hours, minutes, seconds, nanoseconds)
// with the kind as tiebreak, Base10 < Base12 AM < Base12 PM < Base24.
//
// Comparing across kinds compares raw readings, not the instants they
// represent: 9:00:00 PM sorts before 11:00:00 AM. Convert both sides to a
// common kind first when instant order matters.
func (t Time) Compare(o Time) int {
	if d := t.components.Compare(o.components); d != 0 {
		return d
	}
	return t.kind.Compare(o.kind)
}

// String renders the reading per Components.String, prefixed "Metric: " for
// the metric clock and suffixed with the period for the 12-hour clock.
func (t Time) String() string {
	switch t.kind.base {
	case base10:
		return "Metric: " + t.components.String()
	case base12:
		return t.components.String() + " " + t.kind.period.String()
	default:
		return t.components.String()
	}
}

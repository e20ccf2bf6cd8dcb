package metrictime

import (
	"cmp"
	"fmt"
)

// Components is a raw clock-face reading: hours, minutes, seconds and
// nanoseconds with no base attached. A bare reading has no inherent
// validity. (9, 80, 0, 0) is fine on the metric clock and out of range on
// the 24-hour one, so validity is only decided against a Kind's Bounds when
// a Time is constructed.
type Components struct {
	Hours       uint8
	Minutes     uint8
	Seconds     uint8
	Nanoseconds uint32
}

// NewComponents builds a reading from its four fields.
func NewComponents(hours, minutes, seconds uint8, nanoseconds uint32) Components {
	return Components{
		Hours:       hours,
		Minutes:     minutes,
		Seconds:     seconds,
		Nanoseconds: nanoseconds,
	}
}

// Compare orders readings lexicographically: hours, then minutes, then
// seconds, then nanoseconds. It returns -1 if c sorts before o, 0 if they
// are equal, and 1 if c sorts after o.
func (c Components) Compare(o Components) int {
	if d := cmp.Compare(c.Hours, o.Hours); d != 0 {
		return d
	}
	if d := cmp.Compare(c.Minutes, o.Minutes); d != 0 {
		return d
	}
	if d := cmp.Compare(c.Seconds, o.Seconds); d != 0 {
		return d
	}
	return cmp.Compare(c.Nanoseconds, o.Nanoseconds)
}

// String formats the reading as "h:mm:ss.ns". Hours carry no padding,
// minutes and seconds are zero-padded to two digits, and the part after the
// dot is the raw nanosecond count, not a decimal fraction of a second.
func (c Components) String() string {
	return fmt.Sprintf("%d:%02d:%02d.%d", c.Hours, c.Minutes, c.Seconds, c.Nanoseconds)
}

package metrictime

import "fmt"

// Conversions is the unit ratio table for one time system: how many hours
// make a day, minutes an hour, and seconds a minute. Two canonical tables
// exist, StandardConversions and MetricConversions, and every derived
// quantity (seconds per day, nanoseconds per hour, and so on) is computed
// from the three base ratios rather than stored.
type Conversions struct {
	hoursPerDay      uint64
	minutesPerHour   uint64
	secondsPerMinute uint64
}

// NewConversions builds a ratio table from its three base ratios.
func NewConversions(hoursPerDay, minutesPerHour, secondsPerMinute uint64) Conversions {
	return Conversions{
		hoursPerDay:      hoursPerDay,
		minutesPerHour:   minutesPerHour,
		secondsPerMinute: secondsPerMinute,
	}
}

// StandardConversions returns the 24/60/60 table shared by the 24-hour and
// 12-hour clocks.
func StandardConversions() Conversions {
	return NewConversions(24, 60, 60)
}

// MetricConversions returns the 10/100/100 table for the metric clock.
func MetricConversions() Conversions {
	return NewConversions(10, 100, 100)
}

// HoursPerDay returns the hours-per-day ratio.
func (c Conversions) HoursPerDay() uint64 { return c.hoursPerDay }

// MinutesPerHour returns the minutes-per-hour ratio.
func (c Conversions) MinutesPerHour() uint64 { return c.minutesPerHour }

// SecondsPerMinute returns the seconds-per-minute ratio.
func (c Conversions) SecondsPerMinute() uint64 { return c.secondsPerMinute }

// MinutesPerDay derives minutes in a full day.
func (c Conversions) MinutesPerDay() uint64 {
	return c.hoursPerDay * c.minutesPerHour
}

// SecondsPerHour derives seconds in an hour.
func (c Conversions) SecondsPerHour() uint64 {
	return c.minutesPerHour * c.secondsPerMinute
}

// SecondsPerDay derives seconds in a full day.
func (c Conversions) SecondsPerDay() uint64 {
	return c.secondsPerMinute * c.MinutesPerDay()
}

// NanosPerSecond returns nanoseconds in a second. The value is the same in
// every time system; it sits on the table so derived quantities read off one
// receiver.
func (c Conversions) NanosPerSecond() uint64 {
	return NanosPerSecond
}

// NanosPerMillisecond returns nanoseconds in a millisecond.
func (c Conversions) NanosPerMillisecond() uint64 {
	return NanosPerMillisecond
}

// NanosPerMinute derives nanoseconds in a minute.
func (c Conversions) NanosPerMinute() uint64 {
	return c.secondsPerMinute * NanosPerSecond
}

// NanosPerHour derives nanoseconds in an hour.
func (c Conversions) NanosPerHour() uint64 {
	return c.minutesPerHour * c.NanosPerMinute()
}

// NanosPerDay derives nanoseconds in a full day.
func (c Conversions) NanosPerDay() uint64 {
	return c.hoursPerDay * c.NanosPerHour()
}

// String lists the three base ratios, e.g.
// "{ hr/day: 24, min/hr: 60, sec/min: 60 }".
func (c Conversions) String() string {
	return fmt.Sprintf("{ hr/day: %d, min/hr: %d, sec/min: %d }",
		c.hoursPerDay, c.minutesPerHour, c.secondsPerMinute)
}

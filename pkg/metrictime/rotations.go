package metrictime

// Rotations holds the dial angle of each clock hand for a reading, in
// degrees from 12 o'clock. Angles cascade: the nanosecond fraction nudges
// the seconds hand, the seconds fraction the minutes hand, and the minutes
// fraction the hours hand, each carry scaled down by 100, so hands sweep
// continuously instead of stepping once per unit.
type Rotations struct {
	Hours       float64
	Minutes     float64
	Seconds     float64
	Nanoseconds float64
}

// NewRotations derives hand angles for a reading in the given kind. Each
// hand's base fraction is the component over its bounds length for that
// kind, so a metric hour hand moves 36 degrees per hour and a 12-hour hand
// 30.
func NewRotations(c Components, k Kind) Rotations {
	bounds := k.Bounds()
	nanosFrac := float64(c.Nanoseconds) / float64(bounds.Nanoseconds.Len())
	secondsFrac := float64(c.Seconds)/float64(bounds.Seconds.Len()) + nanosFrac/100
	minutesFrac := float64(c.Minutes)/float64(bounds.Minutes.Len()) + secondsFrac/100
	hoursFrac := float64(c.Hours)/float64(bounds.Hours.Len()) + minutesFrac/100
	return Rotations{
		Hours:       FullCircleDegrees * hoursFrac,
		Minutes:     FullCircleDegrees * minutesFrac,
		Seconds:     FullCircleDegrees * secondsFrac,
		Nanoseconds: FullCircleDegrees * nanosFrac,
	}
}

package metrictime

// MetricConversionRate is the size of a standard day-fraction unit relative
// to its metric counterpart: 86,400 standard seconds over 100,000 metric
// seconds. Rescaling a nanosecond total from the standard number line to the
// metric one divides by this rate; the reverse multiplies.
const MetricConversionRate = 0.864

// FullCircleDegrees is one full rotation of a clock hand.
const FullCircleDegrees = 360.0

// Nanosecond counts shared by every base. A second is a second's worth of
// nanoseconds no matter how many seconds make up a minute.
const (
	NanosPerSecond      = 1_000_000_000
	NanosPerMillisecond = 1_000_000
)

package metrictime

import "math"

// Converter rescales a scalar between the standard and metric number lines.
// The rate is the size of a metric unit relative to its standard
// counterpart, so destination values come from dividing by it and origin
// values from multiplying.
//
// Rounding is asymmetric and only applies to whole inputs: ToDest floors,
// ToOrigin ceils, and fractional inputs pass through unrounded. The
// asymmetry makes integer counts converge instead of drift when they cross
// the rate repeatedly; after the first round trip a whole value maps onto a
// stable pair.
type Converter struct {
	rate float64
}

// NewConverter returns a Converter with the given rate.
func NewConverter(rate float64) Converter {
	return Converter{rate: rate}
}

// MetricConverter returns the standard-to-metric converter, rated at
// MetricConversionRate.
func MetricConverter() Converter {
	return NewConverter(MetricConversionRate)
}

// Rate returns the conversion rate.
func (c Converter) Rate() float64 {
	return c.rate
}

// ToDest rescales an origin-side value to the destination side, flooring
// the result when the input is whole.
func (c Converter) ToDest(origin float64) float64 {
	out := origin / c.rate
	if hasFraction(origin) {
		return out
	}
	return math.Floor(out)
}

// ToOrigin rescales a destination-side value back to the origin side,
// ceiling the result when the input is whole.
func (c Converter) ToOrigin(dest float64) float64 {
	out := dest * c.rate
	if hasFraction(dest) {
		return out
	}
	return math.Ceil(out)
}

func hasFraction(v float64) bool {
	return math.Trunc(v) != v
}

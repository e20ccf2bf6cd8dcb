package metrictime

import (
	"cmp"
	"fmt"
	"strings"
)

// Period splits the 12-hour clock's day in two.
type Period uint8

const (
	// AM covers midnight up to noon.
	AM Period = iota
	// PM covers noon up to midnight.
	PM
)

// Compare orders AM before PM.
func (p Period) Compare(o Period) int {
	return cmp.Compare(p, o)
}

// String returns "AM" or "PM".
func (p Period) String() string {
	if p == PM {
		return "PM"
	}
	return "AM"
}

// base enumerates the supported time bases. The 24-hour clock is the zero
// value so a zero Kind is usable.
type base uint8

const (
	base24 base = iota
	base12
	base10
)

// Kind identifies the base a reading is expressed in: the 24-hour clock,
// the 12-hour clock with an AM/PM period, or the 10-hour metric clock.
// Kinds are comparable with ==, and the zero value is Base24().
type Kind struct {
	base   base
	period Period
}

// Base24 returns the 24-hour clock kind.
func Base24() Kind {
	return Kind{base: base24}
}

// Base12 returns the 12-hour clock kind for the given period.
func Base12(p Period) Kind {
	return Kind{base: base12, period: p}
}

// Base10 returns the metric (decimal) clock kind.
func Base10() Kind {
	return Kind{base: base10}
}

// Period returns the AM/PM period and true for 12-hour kinds, and false for
// the others.
func (k Kind) Period() (Period, bool) {
	if k.base != base12 {
		return AM, false
	}
	return k.period, true
}

// Conversions returns the unit ratio table readings of this kind are
// totaled with: the metric table for Base10 and the standard table for the
// two standard clocks.
func (k Kind) Conversions() Conversions {
	if k.base == base10 {
		return MetricConversions()
	}
	return StandardConversions()
}

// Compare orders kinds Base10 < Base12 AM < Base12 PM < Base24. The order
// is arbitrary but fixed; Time.Compare uses it as the tiebreak between
// equal readings.
func (k Kind) Compare(o Kind) int {
	return cmp.Compare(k.rank(), o.rank())
}

func (k Kind) rank() int {
	switch k.base {
	case base10:
		return 0
	case base12:
		return 1 + int(k.period)
	default:
		return 3
	}
}

// String describes the kind as "Metric", "Standard AM", "Standard PM" or
// "24 hour".
func (k Kind) String() string {
	switch k.base {
	case base10:
		return "Metric"
	case base12:
		return "Standard " + k.period.String()
	default:
		return "24 hour"
	}
}

// ParseKind reads a kind from its configuration spelling. Accepted values,
// case-insensitively: "base24" or "standard" for the 24-hour clock,
// "base12" or "base12am" for 12-hour AM, "base12pm" for 12-hour PM, and
// "base10" or "metric" for the metric clock. The String() forms parse too.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base10", "metric":
		return Base10(), nil
	case "base12", "base12am", "standard am":
		return Base12(AM), nil
	case "base12pm", "standard pm":
		return Base12(PM), nil
	case "base24", "standard", "24 hour":
		return Base24(), nil
	default:
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

package metrictime

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseComponents reads a reading in the shape String produces: "h:mm:ss"
// with an optional ".ns" tail. The tail is a raw nanosecond count, so
// "0:00:00.5" means five nanoseconds, not half a second. Only the shape is
// checked here; pair the result with a Kind via NewTime to validate ranges.
func ParseComponents(s string) (Components, error) {
	rest := strings.TrimSpace(s)
	var nanos uint64
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		n, err := strconv.ParseUint(rest[dot+1:], 10, 32)
		if err != nil {
			return Components{}, fmt.Errorf("%w: bad nanoseconds in %q", ErrMalformedTime, s)
		}
		nanos = n
		rest = rest[:dot]
	}
	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return Components{}, fmt.Errorf("%w: want h:mm:ss[.ns], got %q", ErrMalformedTime, s)
	}
	var fields [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return Components{}, fmt.Errorf("%w: bad field %q in %q", ErrMalformedTime, part, s)
		}
		fields[i] = uint8(v)
	}
	return NewComponents(fields[0], fields[1], fields[2], uint32(nanos)), nil
}

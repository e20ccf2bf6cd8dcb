package metrictime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reuschj/metric-time/pkg/metrictime"
)

func TestNewComponents(t *testing.T) {
	c := metrictime.NewComponents(9, 23, 56, 9_234_234)

	assert.Equal(t, uint8(9), c.Hours)
	assert.Equal(t, uint8(23), c.Minutes)
	assert.Equal(t, uint8(56), c.Seconds)
	assert.Equal(t, uint32(9_234_234), c.Nanoseconds)
}

func TestComponentsString(t *testing.T) {
	tests := []struct {
		name string
		c    metrictime.Components
		want string
	}{
		{
			name: "hours unpadded, minutes and seconds padded",
			c:    metrictime.NewComponents(9, 5, 6, 9_234_234),
			want: "9:05:06.9234234",
		},
		{
			name: "nanoseconds are a raw count, not a fraction",
			c:    metrictime.NewComponents(23, 9, 8, 123),
			want: "23:09:08.123",
		},
		{
			name: "zero",
			c:    metrictime.NewComponents(0, 0, 0, 0),
			want: "0:00:00.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.String())
		})
	}
}

func TestComponentsCompare(t *testing.T) {
	tests := []struct {
		name string
		a    metrictime.Components
		b    metrictime.Components
		want int
	}{
		{
			name: "equal",
			a:    metrictime.NewComponents(1, 2, 3, 4),
			b:    metrictime.NewComponents(1, 2, 3, 4),
			want: 0,
		},
		{
			name: "hours dominate",
			a:    metrictime.NewComponents(1, 59, 59, 999),
			b:    metrictime.NewComponents(2, 0, 0, 0),
			want: -1,
		},
		{
			name: "minutes break hour ties",
			a:    metrictime.NewComponents(5, 31, 0, 0),
			b:    metrictime.NewComponents(5, 30, 59, 999),
			want: 1,
		},
		{
			name: "seconds break minute ties",
			a:    metrictime.NewComponents(5, 30, 1, 0),
			b:    metrictime.NewComponents(5, 30, 2, 0),
			want: -1,
		},
		{
			name: "nanoseconds break second ties",
			a:    metrictime.NewComponents(5, 30, 2, 100),
			b:    metrictime.NewComponents(5, 30, 2, 99),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

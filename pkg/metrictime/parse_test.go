package metrictime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reuschj/metric-time/pkg/metrictime"
)

func TestParseComponents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  metrictime.Components
	}{
		{
			name:  "full reading",
			input: "9:23:56.9234234",
			want:  metrictime.NewComponents(9, 23, 56, 9_234_234),
		},
		{
			name:  "missing tail means zero nanoseconds",
			input: "16:10:23",
			want:  metrictime.NewComponents(16, 10, 23, 0),
		},
		{
			name:  "tail is a raw nanosecond count",
			input: "0:00:00.5",
			want:  metrictime.NewComponents(0, 0, 0, 5),
		},
		{
			name:  "surrounding space is trimmed",
			input: "  3:91:62.47724807 ",
			want:  metrictime.NewComponents(3, 91, 62, 47_724_807),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := metrictime.ParseComponents(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseComponentsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"9",
		"9:23",
		"9:23:56:01",
		"x:23:56",
		"9:23:56.",
		"9:23:56.abc",
		"9:23:-6",
		"300:00:00",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := metrictime.ParseComponents(input)
			assert.ErrorIs(t, err, metrictime.ErrMalformedTime)
		})
	}
}

func TestParseComponentsRoundTripsString(t *testing.T) {
	c := metrictime.NewComponents(23, 9, 8, 123)

	got, err := metrictime.ParseComponents(c.String())

	require.NoError(t, err)
	assert.Equal(t, c, got)
}

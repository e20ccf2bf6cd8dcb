package clock_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reuschj/metric-time/pkg/clock"
	"github.com/reuschj/metric-time/pkg/metrictime"
	"github.com/reuschj/metric-time/pkg/metrictime/metrictimetest"
)

func TestDefaultSettings(t *testing.T) {
	s := clock.DefaultSettings()

	assert.Equal(t, uint64(0), s.MaxEvents, "unlimited by default")
	assert.Equal(t, time.Second, s.Interval)
	assert.Equal(t, metrictime.Base24(), s.Kind)
	assert.Nil(t, s.Source)
	assert.Nil(t, s.Logger)
}

func TestSettingsChainers(t *testing.T) {
	source := metrictimetest.NewFakeSource(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	base := clock.DefaultSettings()
	s := base.
		WithMaxEvents(5).
		WithInterval(250 * time.Millisecond).
		WithKind(metrictime.Base10()).
		WithSource(source).
		WithLogger(logger)

	assert.Equal(t, uint64(5), s.MaxEvents)
	assert.Equal(t, 250*time.Millisecond, s.Interval)
	assert.Equal(t, metrictime.Base10(), s.Kind)
	assert.Equal(t, metrictime.Source(source), s.Source)
	assert.Equal(t, logger, s.Logger)

	// Chainers copy; the base settings are untouched.
	assert.Equal(t, uint64(0), base.MaxEvents)
	assert.Equal(t, time.Second, base.Interval)
	assert.Equal(t, metrictime.Base24(), base.Kind)

	cleared := s.ClearMaxEvents()
	assert.Equal(t, uint64(0), cleared.MaxEvents)
	assert.Equal(t, uint64(5), s.MaxEvents)
}

package metrictime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reuschj/metric-time/pkg/metrictime"
	"github.com/reuschj/metric-time/pkg/metrictime/metrictimetest"
)

func TestSystemSource(t *testing.T) {
	t.Run("returns current time", func(t *testing.T) {
		source := metrictime.System()
		before := time.Now()
		got := source.Now()
		after := time.Now()

		assert.False(t, got.Before(before), "source.Now() should not be before reference time")
		assert.False(t, got.After(after), "source.Now() should not be after reference time")
	})
}

func TestFakeSource(t *testing.T) {
	fixedTime := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("returns fixed time", func(t *testing.T) {
		source := metrictimetest.NewFakeSource(fixedTime)
		assert.True(t, source.Now().Equal(fixedTime))
	})

	t.Run("advance moves time forward", func(t *testing.T) {
		source := metrictimetest.NewFakeSource(fixedTime)
		source.Advance(1 * time.Hour)

		expected := fixedTime.Add(1 * time.Hour)
		assert.True(t, source.Now().Equal(expected))
	})

	t.Run("set changes time", func(t *testing.T) {
		source := metrictimetest.NewFakeSource(fixedTime)
		newTime := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
		source.Set(newTime)

		assert.True(t, source.Now().Equal(newTime))
	})

	t.Run("feeds FromTime deterministically", func(t *testing.T) {
		source := metrictimetest.NewFakeSource(time.Date(2026, 2, 1, 16, 10, 23, 12_345, time.UTC))

		mt := metrictime.FromTime(source.Now())

		assert.Equal(t, metrictime.NewComponents(16, 10, 23, 12_345), mt.Components())
	})
}

// Package metrictime represents a time of day in three bases and converts
// values between them: the 24-hour clock, the 12-hour AM/PM clock, and a
// decimal "metric" clock that divides the day into 10 hours of 100 minutes
// of 100 seconds.
//
// A Time pairs a raw clock-face reading (Components) with the base it is
// expressed in (Kind) and is validated once at construction. Conversion
// preserves the instant of day: readings are totaled as nanoseconds since
// midnight on their own number line, rescaled across the standard/metric
// boundary by MetricConversionRate, and decomposed with the target's unit
// ratios. The 12-hour and metric bases never convert directly; they pivot
// through the 24-hour clock.
//
// Anything that samples the current time does so through a Source, so the
// wall clock stays injectable in tests and replaceable by an NTP-corrected
// implementation.
package metrictime

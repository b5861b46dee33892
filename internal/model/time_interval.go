package model

import "time"

// TimeInterval labels the length of the recurring counting window.
type TimeInterval string

const (
	// IntervalMinute is the short window. The label says minute but the window is 30 minutes.
	IntervalMinute TimeInterval = "minute"
	IntervalHour   TimeInterval = "hour"
	IntervalDay    TimeInterval = "day"
	IntervalWeek   TimeInterval = "week"
)

var intervalDurations = map[TimeInterval]time.Duration{
	IntervalMinute: 1_800_000 * time.Millisecond,
	IntervalHour:   3_600_000 * time.Millisecond,
	IntervalDay:    86_400_000 * time.Millisecond,
	IntervalWeek:   604_800_000 * time.Millisecond,
}

// Duration returns the fixed window length for the label.
func (t TimeInterval) Duration() (time.Duration, bool) {
	d, ok := intervalDurations[t]
	return d, ok
}

// Valid reports whether the label is one of the known intervals.
func (t TimeInterval) Valid() bool {
	_, ok := intervalDurations[t]
	return ok
}

// TimeIntervals lists the known labels from shortest to longest.
func TimeIntervals() []TimeInterval {
	return []TimeInterval{IntervalMinute, IntervalHour, IntervalDay, IntervalWeek}
}

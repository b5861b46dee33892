package model

import "time"

// SiteLimit is one user-configured visit cap.
type SiteLimit struct {
	ID           int64
	Pattern      string
	VisitLimit   int
	TimeInterval TimeInterval
	VisitCount   int
	LastReset    time.Time
	CreatedAt    time.Time
}

// ResetAt returns the end of the current window. ok is false for unknown intervals.
func (s SiteLimit) ResetAt() (time.Time, bool) {
	d, ok := s.TimeInterval.Duration()
	if !ok {
		return time.Time{}, false
	}
	return s.LastReset.Add(d), true
}

// Exceeded reports whether the counter is strictly above the limit.
func (s SiteLimit) Exceeded() bool {
	return s.VisitCount > s.VisitLimit
}

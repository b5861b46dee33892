package scheduler

import "time"

// Export for testing
func (s *Scheduler) SetClock(now func() time.Time) { s.now = now }

func (s *Scheduler) Interval() time.Duration { return s.interval }

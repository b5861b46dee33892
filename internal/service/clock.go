package service

import "time"

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

func orSystemClock(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return c
}

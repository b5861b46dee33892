package service

import (
	"fmt"
	"time"
)

// NotAvailable is shown when a value cannot be computed.
const NotAvailable = "N/A"

// FormatTimeUntilReset renders a remaining duration for the blocked page.
// More than a day is shown in whole days, at least an hour as hours and minutes,
// anything else as minutes. Negative durations count as zero.
func FormatTimeUntilReset(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)

	switch {
	case d > 24*time.Hour:
		return plural(hours/24, "day")
	case hours >= 1:
		return fmt.Sprintf("%s and %s", plural(hours, "hour"), plural(minutes, "minute"))
	default:
		return plural(minutes, "minute")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

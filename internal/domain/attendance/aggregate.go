package attendance

import (
	"fmt"
	"time"
)

// AggregateWorkedTime folds a set of already-fetched sessions into total
// worked time per employee. A record is included when its clock-in falls
// inside [windowStart, windowEnd], endpoints inclusive; a session that
// started before the window is excluded entirely even if it ends inside it.
// Still-open sessions are clamped to now. Records whose effective end
// precedes their clock-in (clock skew, corrupt data) contribute zero.
//
// The fold is pure and does no store access; callers supply the record set
// for the window they care about.
func AggregateWorkedTime(records []Attendance, windowStart, windowEnd, now time.Time) map[string]time.Duration {
	totals := make(map[string]time.Duration)

	for _, rec := range records {
		if rec.ClockIn.Before(windowStart) || rec.ClockIn.After(windowEnd) {
			continue
		}

		effectiveEnd := windowEnd
		if rec.Open() {
			effectiveEnd = now
		} else if rec.ClockOut != nil {
			effectiveEnd = *rec.ClockOut
		}

		if effectiveEnd.Before(rec.ClockIn) {
			continue
		}

		totals[rec.EmployeeID] += effectiveEnd.Sub(rec.ClockIn)
	}

	return totals
}

// FormatWorked renders a duration as "8h 30m" for report rows.
func FormatWorked(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMinutes := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// FormatElapsed renders a duration as a human-readable phrase like
// "2 hours 15 minutes". This is the cached Duration string written at
// clock-out time; it is never recomputed on read.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMinutes := int(d.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	hourUnit := "hours"
	if hours == 1 {
		hourUnit = "hour"
	}
	minuteUnit := "minutes"
	if minutes == 1 {
		minuteUnit = "minute"
	}

	if hours == 0 {
		return fmt.Sprintf("%d %s", minutes, minuteUnit)
	}
	if minutes == 0 {
		return fmt.Sprintf("%d %s", hours, hourUnit)
	}
	return fmt.Sprintf("%d %s %d %s", hours, hourUnit, minutes, minuteUnit)
}

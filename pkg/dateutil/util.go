package dateutil

import "time"

func BeginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDailyAt returns the next occurrence of hour:00 UTC strictly after t.
func NextDailyAt(t time.Time, hour int) time.Time {
	t = t.UTC()
	next := time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, time.UTC)
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// NextWeeklyAt returns the next occurrence of the given weekday at hour:00
// UTC strictly after t.
func NextWeeklyAt(t time.Time, weekday time.Weekday, hour int) time.Time {
	t = t.UTC()
	next := time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, time.UTC)
	for next.Weekday() != weekday || !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// DaysLeft reports the number of days remaining until deadline, rounded up.
// It never returns a negative value.
func DaysLeft(now, deadline time.Time) int {
	if !deadline.After(now) {
		return 0
	}

	days := int(deadline.Sub(now) / (24 * time.Hour))
	if deadline.Sub(now)%(24*time.Hour) != 0 {
		days++
	}

	return days
}

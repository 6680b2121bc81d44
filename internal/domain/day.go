package domain

import "time"

// Saturday weekday index (0=Monday)
const SaturdayIndex = 5

// DateOf truncates t to midnight in its own location
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekdayIndex returns 0 for Monday through 6 for Sunday
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsSaturday returns true for Saturdays
func IsSaturday(t time.Time) bool {
	return WeekdayIndex(t) == SaturdayIndex
}

package domain

import "time"

// BusyInterval is a half-open range [Start, End) during which no slot can be offered
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval has positive length
func (b BusyInterval) IsValid() bool {
	return b.Start.Before(b.End)
}

// Overlaps checks the half-open intersection with [start, end)
// Touching endpoints do not overlap
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return !(!end.After(b.Start) || !start.Before(b.End))
}

// TouchesDay returns true if the interval starts on, ends on or spans across day
func (b BusyInterval) TouchesDay(day time.Time) bool {
	d := DateOf(day)
	startDay := DateOf(b.Start.In(day.Location()))
	endDay := DateOf(b.End.In(day.Location()))

	if d.Equal(startDay) || d.Equal(endDay) {
		return true
	}
	return startDay.Before(d) && d.Before(endDay)
}

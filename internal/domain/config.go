package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Jornada identifies a named working-day window
type Jornada int

const (
	JornadaMorning   Jornada = 1 // 08:00-12:00
	JornadaAfternoon Jornada = 2 // 12:00-17:00
	JornadaFullDay   Jornada = 3 // 08:00-17:00
)

// IsValid returns true for the known jornada codes
func (j Jornada) IsValid() bool {
	return j >= JornadaMorning && j <= JornadaFullDay
}

// Window is an open/close span within a day, half-open [From, To)
type Window struct {
	From types.TimeString
	To   types.TimeString
}

// IsEmpty returns true if the window cannot hold any time
func (w Window) IsEmpty() bool {
	return !w.From.IsBefore(w.To)
}

// PartialWindow holds explicitly configured endpoints; nil means "keep the base value"
type PartialWindow struct {
	From *types.TimeString
	To   *types.TimeString
}

// FilterConfig describes which days and hours to offer
type FilterConfig struct {
	SlotMinutes     int
	TargetDayCount  int
	AllowedWeekdays map[int]struct{} // weekday indexes 0=Monday..6=Sunday; empty = any day
	Jornada         *Jornada
	ExplicitWindow  *PartialWindow
}

// DefaultFilterConfig returns the configuration used when the payload has no filter
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		SlotMinutes:    DefaultSlotMinutes,
		TargetDayCount: DefaultTargetDayCount,
	}
}

// HasWeekdayFilter returns true if only some weekdays are allowed
func (c *FilterConfig) HasWeekdayFilter() bool {
	return len(c.AllowedWeekdays) > 0
}

// AllowsWeekday checks the weekday filter; without a filter every weekday passes
func (c *FilterConfig) AllowsWeekday(index int) bool {
	if !c.HasWeekdayFilter() {
		return true
	}
	_, ok := c.AllowedWeekdays[index]
	return ok
}

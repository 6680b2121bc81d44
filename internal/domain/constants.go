package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Default filter values
const (
	DefaultSlotMinutes    = 20
	DefaultTargetDayCount = 7
)

// DayScanLimit bounds the forward calendar walk so an unsatisfiable weekday filter
// still terminates. Hitting it yields a truncated, best-effort day list.
const DayScanLimit = 730

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// AppointmentDateTime DD/MM/YYYY HH:MM:SS, 24h; one-digit day and month accepted
	AppointmentDateTime = "2/1/2006 15:04:05"
)

// Working-day spans selected by the jornada code
var (
	MorningOpen    = types.MustTimeString("08:00")
	MiddayBoundary = types.MustTimeString("12:00")
	EveningClose   = types.MustTimeString("17:00")

	// SaturdayClose is the latest closing time on Saturdays
	SaturdayClose = types.MustTimeString("13:00")
)

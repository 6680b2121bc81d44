package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Slot represents a free appointment window, half-open [Start, End)
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// DayAvailability lists the free slots of one selected day
type DayAvailability struct {
	Day   time.Time
	Slots []Slot
}

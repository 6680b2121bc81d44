package holidays

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/holidays"
)

// HolidayCalendar интерфейс календаря праздников
type HolidayCalendar interface {
	HolidaysInYear(year int) []holidays.Holiday
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

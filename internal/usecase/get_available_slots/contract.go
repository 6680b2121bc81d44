package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/payload"
)

// PayloadNormalizer интерфейс нормализатора входных данных
type PayloadNormalizer interface {
	// Normalize приводит payload любого поддерживаемого вида к занятым интервалам и фильтру
	Normalize(raw []byte) (*payload.Normalized, error)
}

// HolidayOracle интерфейс календаря нерабочих дней
type HolidayOracle interface {
	// IsExcluded возвращает true для воскресений и праздников
	IsExcluded(day time.Time) bool
}

// MetricsRecorder интерфейс сбора метрик расчета
type MetricsRecorder interface {
	ObserveComputation(outcome string, days, slots int, duration time.Duration)
	AddDroppedItems(kind string, n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

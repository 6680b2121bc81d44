package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var cot = time.FixedZone("COT", -5*60*60)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, cot)
}

func at(year int, month time.Month, d, hour, minute int) time.Time {
	return time.Date(year, month, d, hour, minute, 0, 0, cot)
}

func ts(s string) types.TimeString {
	return types.MustTimeString(s)
}

func tsPtr(s string) *types.TimeString {
	t := types.MustTimeString(s)
	return &t
}

func jornada(j domain.Jornada) *domain.Jornada {
	return &j
}

func slotStrings(slots []domain.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.String()+"-"+s.End.String())
	}
	return out
}

// fixedClock возвращает заранее заданное время
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeOracle исключает только воскресенья и перечисленные даты
type fakeOracle struct {
	excluded map[string]bool
}

func (o fakeOracle) IsExcluded(d time.Time) bool {
	return d.Weekday() == time.Sunday || o.excluded[d.Format(domain.DateFormat)]
}

// openOracle ничего не исключает
type openOracle struct{}

func (openOracle) IsExcluded(time.Time) bool { return false }

// panickingOracle имитирует сбой внешнего календаря
type panickingOracle struct{}

func (panickingOracle) IsExcluded(time.Time) bool { panic("calendar unavailable") }

// nopLogger глушит логи в тестах
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// recordingMetrics запоминает вызовы метрик
type recordingMetrics struct {
	outcomes []string
	dropped  map[string]int
}

func (m *recordingMetrics) ObserveComputation(outcome string, _, _ int, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) AddDroppedItems(kind string, n int) {
	if m.dropped == nil {
		m.dropped = make(map[string]int)
	}
	m.dropped[kind] += n
}

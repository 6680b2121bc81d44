package get_available_slots

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/holidays"
)

func dateStrings(days []time.Time) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.Format(domain.DateFormat))
	}
	return out
}

func TestSelectDays_StartsTomorrowAndSkipsExcluded(t *testing.T) {
	// Понедельник 2025-09-01, вечер
	today := at(2025, time.September, 1, 22, 15)
	oracle := fakeOracle{excluded: map[string]bool{"2025-09-03": true}}
	cfg := domain.FilterConfig{TargetDayCount: 5}

	selection := selectDays(today, cfg, oracle, domain.DayScanLimit)

	assert.Equal(t, []string{"2025-09-02", "2025-09-04", "2025-09-05", "2025-09-06", "2025-09-08"}, dateStrings(selection.Days))
	assert.False(t, selection.Truncated)
	assert.Equal(t, 7, selection.Scanned)
}

func TestSelectDays_WeekdayFilter(t *testing.T) {
	today := day(2025, time.September, 1)
	cfg := domain.FilterConfig{
		TargetDayCount:  3,
		AllowedWeekdays: map[int]struct{}{0: {}, 4: {}},
	}

	selection := selectDays(today, cfg, fakeOracle{}, domain.DayScanLimit)

	assert.Equal(t, []string{"2025-09-05", "2025-09-08", "2025-09-12"}, dateStrings(selection.Days))
	for _, d := range selection.Days {
		assert.Contains(t, []int{0, 4}, domain.WeekdayIndex(d))
	}
}

func TestSelectDays_ColombianHolidays(t *testing.T) {
	cal, err := holidays.NewCalendar(holidays.CountryColombia, nil)
	require.NoError(t, err)

	// 2025-08-15 (пятница) - перед понедельником 18 августа (Asunción)
	today := day(2025, time.August, 15)
	selection := selectDays(today, domain.FilterConfig{TargetDayCount: 3}, cal, domain.DayScanLimit)

	assert.Equal(t, []string{"2025-08-16", "2025-08-19", "2025-08-20"}, dateStrings(selection.Days))
}

func TestSelectDays_UnsatisfiableFilterIsBounded(t *testing.T) {
	cfg := domain.FilterConfig{
		TargetDayCount:  7,
		AllowedWeekdays: map[int]struct{}{6: {}}, // только воскресенье - всегда исключено
	}

	selection := selectDays(day(2025, time.September, 1), cfg, fakeOracle{}, domain.DayScanLimit)

	assert.Empty(t, selection.Days)
	assert.True(t, selection.Truncated)
	assert.Equal(t, domain.DayScanLimit, selection.Scanned)
}

func TestSelectDays_PartialWhenLimitHit(t *testing.T) {
	cfg := domain.FilterConfig{TargetDayCount: 10}

	selection := selectDays(day(2025, time.September, 1), cfg, openOracle{}, 4)

	assert.Len(t, selection.Days, 4)
	assert.True(t, selection.Truncated)
}

func TestSelectDays_HugeQuotaIsBoundedByScan(t *testing.T) {
	cfg := domain.FilterConfig{TargetDayCount: math.MaxInt}

	selection := selectDays(day(2025, time.September, 1), cfg, openOracle{}, domain.DayScanLimit)

	assert.Len(t, selection.Days, domain.DayScanLimit)
	assert.Equal(t, domain.DayScanLimit, selection.Scanned)
	assert.LessOrEqual(t, cap(selection.Days), domain.DayScanLimit)
	assert.True(t, selection.Truncated)
}

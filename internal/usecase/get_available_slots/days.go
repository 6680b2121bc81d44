package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// daySelection результат просмотра календаря
type daySelection struct {
	Days      []time.Time
	Scanned   int
	Truncated bool // лимит просмотра исчерпан раньше, чем набралось нужное число дней
}

// selectDays идет по календарю начиная с завтрашнего дня и собирает TargetDayCount дней,
// которые не исключены календарем и проходят фильтр по дням недели.
// Просмотр ограничен scanLimit днями; при достижении лимита возвращается то, что успели собрать
func selectDays(today time.Time, cfg domain.FilterConfig, oracle HolidayOracle, scanLimit int) daySelection {
	// Квота приходит из payload и может быть сколь угодно большой: емкость ограничена лимитом просмотра
	selection := daySelection{Days: make([]time.Time, 0, min(cfg.TargetDayCount, scanLimit))}

	day := domain.DateOf(today).AddDate(0, 0, 1)
	for selection.Scanned < scanLimit && len(selection.Days) < cfg.TargetDayCount {
		selection.Scanned++

		if !oracle.IsExcluded(day) && cfg.AllowsWeekday(domain.WeekdayIndex(day)) {
			selection.Days = append(selection.Days, day)
		}
		day = day.AddDate(0, 0, 1)
	}

	selection.Truncated = len(selection.Days) < cfg.TargetDayCount
	return selection
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// generateFreeSlots нарезает окно дня на слоты фиксированной ширины и убирает занятые
// Слоты идут от начала окна с шагом slotMinutes; хвост короче слота не используется
func generateFreeSlots(day time.Time, window domain.Window, slotMinutes int, busy []domain.BusyInterval) []domain.Slot {
	relevant := relevantIntervals(day, busy)

	free := make([]domain.Slot, 0)
	for _, slot := range partitionWindow(window, slotMinutes) {
		if !isBlocked(day, slot, relevant) {
			free = append(free, slot)
		}
	}
	return free
}

// partitionWindow генерирует все слоты окна [From, To)
func partitionWindow(window domain.Window, slotMinutes int) []domain.Slot {
	slots := make([]domain.Slot, 0)
	if slotMinutes <= 0 || window.IsEmpty() {
		return slots
	}

	current := window.From
	for current.IsBefore(window.To) {
		end, err := current.AddMinutes(slotMinutes)
		if err != nil || end.IsAfter(window.To) {
			break
		}

		slots = append(slots, domain.Slot{Start: current, End: end})
		current = end
	}

	return slots
}

// relevantIntervals оставляет интервалы, которые начинаются, заканчиваются в этот день
// или целиком его перекрывают (многодневные интервалы)
func relevantIntervals(day time.Time, busy []domain.BusyInterval) []domain.BusyInterval {
	relevant := make([]domain.BusyInterval, 0, len(busy))
	for _, b := range busy {
		if b.TouchesDay(day) {
			relevant = append(relevant, b)
		}
	}
	return relevant
}

// isBlocked проверяет пересечение слота с занятыми интервалами
// Интервалы полуоткрытые: бронь, заканчивающаяся ровно в начале слота, его не блокирует
//
// Примеры:
// - Слот 09:00-09:20, занято 09:10-10:00 → заблокирован
// - Слот 09:00-09:20, занято 08:00-09:00 → свободен (граничат)
// - Слот 09:00-09:20, занято 09:20-10:00 → свободен (граничат)
func isBlocked(day time.Time, slot domain.Slot, busy []domain.BusyInterval) bool {
	start := slot.Start.On(day)
	end := slot.End.On(day)

	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

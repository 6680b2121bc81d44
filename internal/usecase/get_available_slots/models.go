package get_available_slots

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/payload"
)

// Request модель запроса на расчет свободных слотов
type Request struct {
	RequestID string // ID запроса (только для логирования)
	Payload   []byte // JSON в одном из поддерживаемых форматов
}

// Response модель ответа со свободными слотами по дням
type Response struct {
	Days []domain.DayAvailability // Дни по возрастанию даты, дни без слотов тоже присутствуют

	// Truncated - просмотр календаря упёрся в ограничение, дней меньше, чем запрошено
	Truncated bool

	// Diagnostics - элементы payload, проигнорированные при нормализации
	Diagnostics []payload.Diagnostic

	// AllIntervalsDropped - интервалы были переданы, но ни один не прошел разбор
	AllIntervalsDropped bool
}

// TotalSlots количество свободных слотов во всех днях
func (r *Response) TotalSlots() int {
	total := 0
	for _, d := range r.Days {
		total += len(d.Slots)
	}
	return total
}

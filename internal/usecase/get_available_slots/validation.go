package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateFilter проверяет конфигурацию после нормализации
// Слишком большие значения не ошибка: ширина больше окна дает ноль слотов,
// количество дней ограничивается просмотром календаря
func validateFilter(cfg domain.FilterConfig) error {
	if cfg.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slot width must be positive, got %d", ErrInvalidInput, cfg.SlotMinutes)
	}

	if cfg.TargetDayCount <= 0 {
		return fmt.Errorf("%w: day count must be positive, got %d", ErrInvalidInput, cfg.TargetDayCount)
	}

	if cfg.Jornada != nil && !cfg.Jornada.IsValid() {
		return fmt.Errorf("%w: unknown jornada %d", ErrInvalidInput, *cfg.Jornada)
	}

	return nil
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// baseWindow возвращает окно работы по коду jornada; без кода - полный день
func baseWindow(jornada *domain.Jornada) domain.Window {
	if jornada == nil {
		return domain.Window{From: domain.MorningOpen, To: domain.EveningClose}
	}

	switch *jornada {
	case domain.JornadaMorning:
		return domain.Window{From: domain.MorningOpen, To: domain.MiddayBoundary}
	case domain.JornadaAfternoon:
		return domain.Window{From: domain.MiddayBoundary, To: domain.EveningClose}
	default:
		return domain.Window{From: domain.MorningOpen, To: domain.EveningClose}
	}
}

// resolveWindow вычисляет окно работы для конкретного дня
// Явно заданные границы заменяют соответствующие границы jornada,
// в субботу конец окна не позже 13:00
func resolveWindow(cfg domain.FilterConfig, day time.Time) domain.Window {
	window := baseWindow(cfg.Jornada)

	if cfg.ExplicitWindow != nil {
		if cfg.ExplicitWindow.From != nil {
			window.From = *cfg.ExplicitWindow.From
		}
		if cfg.ExplicitWindow.To != nil {
			window.To = *cfg.ExplicitWindow.To
		}
	}

	if domain.IsSaturday(day) && window.To.IsAfter(domain.SaturdayClose) {
		window.To = domain.SaturdayClose
	}

	return window
}

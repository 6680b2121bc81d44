package get_holidays

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	holidaysService "github.com/m04kA/SMC-AvailabilityService/internal/service/holidays"
)

const (
	msgInvalidParams = "Parámetros de consulta inválidos: se espera /holidays/{año}?domingos=true|false"
	msgInvalidYear   = "Año fuera del rango soportado"
	msgInternal      = "Error al consultar los días no laborables"
)

type Handler struct {
	service HolidaysService
	logger  Logger
}

func NewHandler(service HolidaysService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/holidays/{year}
// Query params: domingos (опционально) - добавить воскресенья
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(mux.Vars(r)["year"], r.URL.Query().Get("domingos"))
	if err != nil {
		h.logger.Warn("GET /holidays/{year} - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, holidaysService.ErrInvalidYear) {
			h.logger.Warn("GET /holidays/{year} - Invalid year: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}

		h.logger.Error("GET /holidays/{year} - Failed to list holidays: year=%d, error=%v", serviceReq.Year, err)
		handlers.RespondInternalError(w, msgInternal, err.Error())
		return
	}

	h.logger.Info("GET /holidays/{year} - Holidays retrieved successfully: year=%d, days=%d",
		result.Year, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

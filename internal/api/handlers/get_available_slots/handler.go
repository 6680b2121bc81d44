package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST / и POST /api/v1/availability
// Тело - тот же JSON, что принимает CLI
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = r.Header.Get(middleware.HeaderRequestID)
	}

	// Читаем тело запроса
	body, err := handlers.ReadBody(w, r)
	if err != nil {
		switch {
		case errors.Is(err, handlers.ErrEmptyBody):
			h.logger.Warn("POST %s - Empty body: request=%s", r.URL.Path, requestID)
			handlers.RespondBadRequest(w, MsgEmptyBody)

		case errors.Is(err, handlers.ErrBodyTooLarge):
			h.logger.Warn("POST %s - Body too large: request=%s, error=%v", r.URL.Path, requestID, err)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)

		default:
			h.logger.Warn("POST %s - Failed to read body: request=%s, error=%v", r.URL.Path, requestID, err)
			handlers.RespondBadRequest(w, MsgEmptyBody)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		RequestID: requestID,
		Payload:   body,
	})
	if err != nil {
		status, response := FromUseCaseError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST %s - Failed to compute availability: request=%s, error=%v", r.URL.Path, requestID, err)
		} else {
			h.logger.Warn("POST %s - Rejected payload: request=%s, error=%v", r.URL.Path, requestID, err)
		}
		handlers.RespondJSON(w, status, response)
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST %s - Availability computed: request=%s, days=%d, slots=%d",
		r.URL.Path, requestID, len(result.Days), result.TotalSlots())
	handlers.RespondJSON(w, http.StatusOK, response)
}

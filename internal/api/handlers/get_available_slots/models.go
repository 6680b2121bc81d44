package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// Сообщения об ошибках, общие для HTTP и CLI
const (
	MsgMissingArgument   = "Se requiere al menos un argumento (citas_json)"
	MsgEmptyBody         = "No se recibió ningún cuerpo en la solicitud"
	MsgMalformedJSON     = "Error al interpretar JSON de citas"
	MsgComputationFailed = "Error al calcular disponibilidad"
	MsgBodyTooLarge      = "El cuerpo de la solicitud es demasiado grande"
)

// DayResponse свободные слоты одного дня
type DayResponse struct {
	Dia   string         `json:"dia"`
	Citas []SlotResponse `json:"citas"`
}

// SlotResponse один свободный слот
type SlotResponse struct {
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

// FromUseCaseResponse конвертирует ответ use case в массив дней
// Пустые списки сериализуются как [], а не null
func FromUseCaseResponse(resp *getAvailableSlots.Response) []DayResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		slots := make([]SlotResponse, 0, len(d.Slots))
		for _, s := range d.Slots {
			slots = append(slots, SlotResponse{
				HoraInicio: s.Start.String(),
				HoraFin:    s.End.String(),
			})
		}
		days = append(days, DayResponse{
			Dia:   d.Day.Format(domain.DateFormat),
			Citas: slots,
		})
	}
	return days
}

// FromUseCaseError конвертирует ошибку use case в HTTP статус и тело ответа
func FromUseCaseError(err error) (int, handlers.ErrorResponse) {
	switch {
	case errors.Is(err, getAvailableSlots.ErrMalformedPayload):
		return http.StatusBadRequest, handlers.ErrorResponse{
			Error: MsgMalformedJSON + ": " + getAvailableSlots.SyntaxDetail(err),
		}
	case errors.Is(err, getAvailableSlots.ErrInternal):
		return http.StatusInternalServerError, handlers.ErrorResponse{
			Error:  MsgComputationFailed,
			Detail: err.Error(),
		}
	default:
		return http.StatusBadRequest, handlers.ErrorResponse{
			Error:  MsgComputationFailed,
			Detail: err.Error(),
		}
	}
}

package get_holidays

import (
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	holidaysService "github.com/m04kA/SMC-AvailabilityService/internal/service/holidays"
)

// HolidaysResponse HTTP response model
type HolidaysResponse struct {
	Anio int           `json:"anio"`
	Pais string        `json:"pais"`
	Dias []DayResponse `json:"dias"`
}

// DayResponse нерабочий день
type DayResponse struct {
	Fecha   string `json:"fecha"`
	Nombre  string `json:"nombre"`
	Domingo bool   `json:"domingo"`
}

// ToServiceRequest формирует запрос к сервису из URL и query параметров
func ToServiceRequest(yearStr, includeSundaysStr string) (*holidaysService.ListRequest, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, err
	}

	req := &holidaysService.ListRequest{Year: year}

	// Параметр domingos опционален
	if includeSundaysStr != "" {
		include, err := strconv.ParseBool(includeSundaysStr)
		if err != nil {
			return nil, err
		}
		req.IncludeSundays = include
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *holidaysService.ListResponse) *HolidaysResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Fecha:   d.Date.Format(domain.DateFormat),
			Nombre:  d.Name,
			Domingo: d.Sunday,
		})
	}

	return &HolidaysResponse{
		Anio: resp.Year,
		Pais: resp.Country,
		Dias: days,
	}
}

package availabilityapi

// Day свободные слоты одного дня в ответе сервиса
type Day struct {
	Dia   string `json:"dia"`
	Citas []Slot `json:"citas"`
}

// Slot свободный слот
type Slot struct {
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

// ErrorResponse модель ошибки от сервиса
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

package availabilityapi

import "errors"

var (
	// ErrRemote возвращается, если сервис ответил объектом ошибки {"error": ...}
	ErrRemote = errors.New("availability api: remote error")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут, сборка запроса)
	ErrInternal = errors.New("availability api client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("availability api client: invalid response")
)

package payload

import "errors"

var (
	// ErrMalformedJSON возвращается, если тело запроса не является JSON
	ErrMalformedJSON = errors.New("payload: malformed JSON")

	// ErrUnsupportedPayload возвращается, если JSON не объект и не массив
	ErrUnsupportedPayload = errors.New("payload: expected a JSON object or array")
)

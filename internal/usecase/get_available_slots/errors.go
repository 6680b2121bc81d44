package get_available_slots

import (
	"encoding/json"
	"errors"
)

var (
	// ErrMalformedPayload возвращается, если payload не является JSON
	ErrMalformedPayload = errors.New("malformed payload JSON")

	// ErrUnsupportedPayload возвращается, если payload не объект и не массив
	ErrUnsupportedPayload = errors.New("unsupported payload shape")

	// ErrInvalidInput возвращается при некорректной конфигурации фильтра
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// SyntaxDetail возвращает сообщение JSON-парсера из цепочки ошибок
// Если синтаксической ошибки в цепочке нет, возвращает текст err целиком
func SyntaxDetail(err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Error()
	}
	return err.Error()
}

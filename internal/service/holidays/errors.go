package holidays

import "errors"

var (
	// ErrInvalidYear возвращается для года вне григорианского диапазона расчета Пасхи
	ErrInvalidYear = errors.New("year out of supported range")
)

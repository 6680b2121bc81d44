package holidays

import "errors"

var (
	// ErrUnsupportedCountry возвращается для юрисдикций без правил праздников
	ErrUnsupportedCountry = errors.New("holidays: unsupported country")

	// ErrInvalidExtraDate возвращается при некорректной дополнительной дате закрытия
	ErrInvalidExtraDate = errors.New("holidays: invalid extra date")
)

package config

import "errors"

var (
	// ErrInvalidConfig возвращается, если значения конфигурации невозможны
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

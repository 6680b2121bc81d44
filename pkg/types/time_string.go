package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	minutesPerDay = 24 * 60
	layout        = "15:04"
)

// ErrInvalidTimeString возвращается, если строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// ErrTimeOverflow возвращается, если результат выходит за пределы суток
var ErrTimeOverflow = errors.New("types: time overflows the day")

// TimeString время суток с точностью до минуты (HH:MM)
// Хранится как количество минут от полуночи
type TimeString struct {
	minutes int
}

// NewTimeString создает TimeString из часов и минут переданного времени
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// MustTimeString парсит строку HH:MM и паникует при ошибке (для констант и тестов)
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// NewTimeStringFromString парсит строку формата HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// AddMinutes возвращает время, сдвинутое на n минут
// Ровно 24:00 допускается как конец последнего слота суток
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	result := t.minutes + n
	if result < 0 || result > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %s + %d minutes", ErrTimeOverflow, t, n)
	}
	return TimeString{minutes: result}, nil
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	return t.minutes
}

// IsBefore проверяет, что t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter проверяет, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// On возвращает момент времени t в указанный день (в локации дня)
func (t TimeString) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, day.Location()).Add(time.Duration(t.minutes) * time.Minute)
}

// String возвращает время в формате HH:MM
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

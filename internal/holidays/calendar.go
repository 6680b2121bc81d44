package holidays

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

const dateKeyFormat = "2006-01-02"

// Holiday нерабочий день
type Holiday struct {
	Date time.Time
	Name string
}

// Calendar отвечает, исключен ли день из расписания (воскресенье или праздник)
// Праздники считаются лениво по годам и кешируются, поэтому горизонт запросов не ограничен
type Calendar struct {
	rules func(year int) []Holiday
	extra map[string]string

	mu    sync.Mutex
	years map[int]map[string]string
}

// NewCalendar создает календарь для страны
// extraDates - дополнительные даты закрытия в формате YYYY-MM-DD
func NewCalendar(country string, extraDates []string) (*Calendar, error) {
	var rules func(year int) []Holiday

	switch strings.ToUpper(strings.TrimSpace(country)) {
	case CountryColombia:
		rules = colombianHolidays
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCountry, country)
	}

	extra := make(map[string]string, len(extraDates))
	for _, raw := range extraDates {
		d, err := time.Parse(dateKeyFormat, strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtraDate, raw)
		}
		extra[d.Format(dateKeyFormat)] = "Cierre adicional"
	}

	return &Calendar{
		rules: rules,
		extra: extra,
		years: make(map[int]map[string]string),
	}, nil
}

// IsExcluded возвращает true для воскресений и праздников
func (c *Calendar) IsExcluded(day time.Time) bool {
	if day.Weekday() == time.Sunday {
		return true
	}
	_, ok := c.Holiday(day)
	return ok
}

// Holiday возвращает название праздника, если день праздничный
func (c *Calendar) Holiday(day time.Time) (string, bool) {
	key := day.Format(dateKeyFormat)
	if name, ok := c.extra[key]; ok {
		return name, true
	}

	name, ok := c.year(day.Year())[key]
	return name, ok
}

// HolidaysInYear возвращает праздники года, отсортированные по дате
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	days := c.year(year)

	result := make([]Holiday, 0, len(days))
	for key, name := range days {
		d, _ := time.Parse(dateKeyFormat, key)
		result = append(result, Holiday{Date: d, Name: name})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

func (c *Calendar) year(year int) map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if days, ok := c.years[year]; ok {
		return days
	}

	days := make(map[string]string)
	for _, h := range c.rules(year) {
		key := h.Date.Format(dateKeyFormat)
		// Два праздника могут совпасть после переноса - оставляем первый
		if _, exists := days[key]; !exists {
			days[key] = h.Name
		}
	}
	c.years[year] = days
	return days
}

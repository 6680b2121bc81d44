package holidays

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Service сервис для просмотра календаря нерабочих дней
type Service struct {
	calendar HolidayCalendar
	country  string
	logger   Logger
}

// NewService создает новый экземпляр сервиса
func NewService(calendar HolidayCalendar, country string, logger Logger) *Service {
	return &Service{
		calendar: calendar,
		country:  country,
		logger:   logger,
	}
}

// List возвращает праздники года и, по запросу, все воскресенья
// Праздник, выпавший на воскресенье, попадает в список один раз под своим названием
func (s *Service) List(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	s.logger.Info("List: year=%d, include_sundays=%t", req.Year, req.IncludeSundays)

	// 1. Валидируем год
	if req.Year < MinYear || req.Year > MaxYear {
		s.logger.Warn("List: year=%d out of range", req.Year)
		return nil, fmt.Errorf("%w: %d not in %d..%d", ErrInvalidYear, req.Year, MinYear, MaxYear)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Собираем праздники
	holidays := s.calendar.HolidaysInYear(req.Year)
	days := make([]Day, 0, len(holidays)+53)
	seen := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		days = append(days, Day{Date: h.Date, Name: h.Name, Sunday: h.Date.Weekday() == time.Sunday})
		seen[h.Date.Format(time.DateOnly)] = struct{}{}
	}

	// 3. Добавляем воскресенья
	if req.IncludeSundays {
		d := time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for d.Weekday() != time.Sunday {
			d = d.AddDate(0, 0, 1)
		}
		for ; d.Year() == req.Year; d = d.AddDate(0, 0, 7) {
			if _, ok := seen[d.Format(time.DateOnly)]; ok {
				continue
			}
			days = append(days, Day{Date: d, Name: sundayName, Sunday: true})
		}
		sort.Slice(days, func(i, j int) bool {
			return days[i].Date.Before(days[j].Date)
		})
	}

	s.logger.Info("List: year=%d, days=%d", req.Year, len(days))
	return &ListResponse{Year: req.Year, Country: s.country, Days: days}, nil
}

package holidays

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/holidays"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) *Service {
	t.Helper()
	cal, err := holidays.NewCalendar(holidays.CountryColombia, nil)
	require.NoError(t, err)
	return NewService(cal, holidays.CountryColombia, nopLogger{})
}

func TestList_HolidaysOnly(t *testing.T) {
	resp, err := newService(t).List(context.Background(), &ListRequest{Year: 2025})

	require.NoError(t, err)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, "CO", resp.Country)
	require.Len(t, resp.Days, 17)
	assert.Equal(t, "2025-01-01", resp.Days[0].Date.Format(time.DateOnly))
	assert.Equal(t, "2025-12-25", resp.Days[len(resp.Days)-1].Date.Format(time.DateOnly))
}

func TestList_IncludeSundays(t *testing.T) {
	resp, err := newService(t).List(context.Background(), &ListRequest{Year: 2025, IncludeSundays: true})

	require.NoError(t, err)
	// 2025: 52 воскресенья и 17 праздников, 20 июля - воскресенье и праздник одновременно
	assert.Len(t, resp.Days, 52+17-1)

	sundays := 0
	for i, d := range resp.Days {
		if i > 0 {
			assert.True(t, resp.Days[i-1].Date.Before(d.Date))
		}
		if d.Sunday {
			sundays++
			assert.Equal(t, time.Sunday, d.Date.Weekday())
		}
	}
	assert.Equal(t, 52, sundays)

	for _, d := range resp.Days {
		if d.Date.Format(time.DateOnly) == "2025-07-20" {
			assert.NotEqual(t, sundayName, d.Name)
		}
	}
}

func TestList_InvalidYear(t *testing.T) {
	for _, year := range []int{0, 1500, 10000} {
		_, err := newService(t).List(context.Background(), &ListRequest{Year: year})
		assert.ErrorIs(t, err, ErrInvalidYear, year)
	}
}

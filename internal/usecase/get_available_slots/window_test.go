package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestResolveWindow(t *testing.T) {
	tuesday := day(2025, time.September, 2)
	saturday := day(2025, time.September, 6)

	tests := []struct {
		name     string
		cfg      domain.FilterConfig
		day      time.Time
		wantFrom string
		wantTo   string
	}{
		{name: "default full day", day: tuesday, wantFrom: "08:00", wantTo: "17:00"},
		{name: "jornada 1", cfg: domain.FilterConfig{Jornada: jornada(1)}, day: tuesday, wantFrom: "08:00", wantTo: "12:00"},
		{name: "jornada 2", cfg: domain.FilterConfig{Jornada: jornada(2)}, day: tuesday, wantFrom: "12:00", wantTo: "17:00"},
		{name: "jornada 3", cfg: domain.FilterConfig{Jornada: jornada(3)}, day: tuesday, wantFrom: "08:00", wantTo: "17:00"},
		{
			name:     "explicit window overrides jornada",
			cfg:      domain.FilterConfig{Jornada: jornada(1), ExplicitWindow: &domain.PartialWindow{From: tsPtr("09:30"), To: tsPtr("11:00")}},
			day:      tuesday,
			wantFrom: "09:30",
			wantTo:   "11:00",
		},
		{
			name:     "explicit from keeps base to",
			cfg:      domain.FilterConfig{Jornada: jornada(2), ExplicitWindow: &domain.PartialWindow{From: tsPtr("13:00")}},
			day:      tuesday,
			wantFrom: "13:00",
			wantTo:   "17:00",
		},
		{
			name:     "explicit to keeps base from",
			cfg:      domain.FilterConfig{ExplicitWindow: &domain.PartialWindow{To: tsPtr("18:30")}},
			day:      tuesday,
			wantFrom: "08:00",
			wantTo:   "18:30",
		},
		{name: "saturday clamp", cfg: domain.FilterConfig{Jornada: jornada(3)}, day: saturday, wantFrom: "08:00", wantTo: "13:00"},
		{name: "saturday morning untouched", cfg: domain.FilterConfig{Jornada: jornada(1)}, day: saturday, wantFrom: "08:00", wantTo: "12:00"},
		{name: "saturday afternoon collapses", cfg: domain.FilterConfig{Jornada: jornada(2)}, day: saturday, wantFrom: "12:00", wantTo: "13:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := resolveWindow(tt.cfg, tt.day)
			assert.Equal(t, tt.wantFrom, w.From.String())
			assert.Equal(t, tt.wantTo, w.To.String())
		})
	}
}

func TestResolveWindow_SaturdayClampCanEmptyWindow(t *testing.T) {
	cfg := domain.FilterConfig{ExplicitWindow: &domain.PartialWindow{From: tsPtr("14:00")}}

	w := resolveWindow(cfg, day(2025, time.September, 6))

	assert.True(t, w.IsEmpty())
	assert.Empty(t, partitionWindow(w, 20))
}

package store

import (
	"testing"
	"time"

	"project-nexus-be/pkg/aura"
)

func at(hour int) time.Time {
	return time.Date(2026, time.March, 14, hour, 30, 0, 0, time.UTC)
}

func TestNewShopperSessionHourTracksClock(t *testing.T) {
	tests := []struct {
		name string
		hour int
	}{
		{name: "midday", hour: 12},
		{name: "late night", hour: 23},
		{name: "early morning", hour: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShopperSession("sid", "uid", at(tt.hour))
			if s.Context.HourOfDay != tt.hour {
				t.Errorf("HourOfDay = %d, want %d", s.Context.HourOfDay, tt.hour)
			}
		})
	}
}

func TestTouchRefreshesHour(t *testing.T) {
	s := NewShopperSession("sid", "uid", at(9))
	s.Touch(at(23))
	if s.Context.HourOfDay != 23 {
		t.Errorf("HourOfDay after touch = %d, want 23", s.Context.HourOfDay)
	}
	if !s.LastActive.Equal(at(23)) {
		t.Errorf("LastActive = %v, want %v", s.LastActive, at(23))
	}
}

func TestPinHourStopsRefresh(t *testing.T) {
	s := NewShopperSession("sid", "uid", at(9))
	s.PinHour(22)
	s.Touch(at(14))
	if s.Context.HourOfDay != 22 {
		t.Errorf("pinned HourOfDay = %d, want 22", s.Context.HourOfDay)
	}
}

func TestNightSessionClassifiesRestful(t *testing.T) {
	// A session opened at night must classify time-sensitive auras from the
	// clock hour, not a canned default. Cloudy avoids the sunny rule
	// shadowing the night one.
	s := NewShopperSession("sid", "uid", at(23))
	s.Context.Weather = aura.WeatherCloudy

	got := aura.Classify(s.Context)
	if got.Label != aura.LabelRestful {
		t.Errorf("Classify() at 23:00 = %q, want %q", got.Label, aura.LabelRestful)
	}
}

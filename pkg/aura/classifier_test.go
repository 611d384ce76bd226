package aura

import (
	"testing"
)

func ctxWith(stress, energy int, weather Weather, hour int) Context {
	c := DefaultContext()
	c.StressLevel = stress
	c.EnergyLevel = energy
	c.Weather = weather
	c.HourOfDay = hour
	return c
}

func TestClassifyRuleOrdering(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want Label
	}{
		{name: "high stress wins over everything", ctx: ctxWith(9, 3, WeatherRainy, 12), want: LabelStressed},
		{name: "high stress wins over high energy", ctx: ctxWith(8, 10, WeatherSunny, 12), want: LabelStressed},
		{name: "high energy", ctx: ctxWith(3, 9, WeatherSunny, 12), want: LabelEnergetic},
		{name: "energy boundary 8 is not energetic", ctx: ctxWith(3, 8, WeatherCloudy, 12), want: LabelBalanced},
		{name: "low energy daytime is cozy", ctx: ctxWith(4, 4, WeatherRainy, 14), want: LabelCozy},
		{name: "low energy at night defers to restful", ctx: ctxWith(4, 4, WeatherRainy, 23), want: LabelRestful},
		{name: "low energy sunny falls through to balanced", ctx: ctxWith(4, 4, WeatherSunny, 14), want: LabelBalanced},
		{name: "sunny with energy above six is vibrant", ctx: ctxWith(4, 7, WeatherSunny, 14), want: LabelVibrant},
		{name: "sunny energy six is not vibrant", ctx: ctxWith(4, 6, WeatherSunny, 14), want: LabelBalanced},
		{name: "late night is restful", ctx: ctxWith(4, 7, WeatherCloudy, 22), want: LabelRestful},
		{name: "early morning is restful", ctx: ctxWith(4, 7, WeatherCloudy, 5), want: LabelRestful},
		{name: "six am is not restful", ctx: ctxWith(4, 7, WeatherCloudy, 6), want: LabelBalanced},
		{name: "default fallback", ctx: ctxWith(5, 6, WeatherCloudy, 12), want: LabelBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.ctx)
			if got.Label != tt.want {
				t.Errorf("Classify() = %q, want %q", got.Label, tt.want)
			}
			if got.Color == "" {
				t.Errorf("Classify() returned empty color for %q", got.Label)
			}
		})
	}
}

func TestClassifyStressAlwaysWins(t *testing.T) {
	// Rule 1 must win for every stress level above 7 regardless of the
	// remaining signals.
	for stress := 8; stress <= 10; stress++ {
		for _, weather := range []Weather{WeatherSunny, WeatherRainy, WeatherCloudy, WeatherSnowy} {
			for hour := 0; hour < 24; hour++ {
				got := Classify(ctxWith(stress, 10, weather, hour))
				if got.Label != LabelStressed {
					t.Fatalf("stress=%d weather=%s hour=%d: got %q, want Stressed", stress, weather, hour, got.Label)
				}
			}
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	known := make(map[Label]bool)
	for _, l := range Labels() {
		known[l] = true
	}

	for stress := LevelMin; stress <= LevelMax; stress++ {
		for energy := LevelMin; energy <= LevelMax; energy++ {
			for _, weather := range []Weather{WeatherSunny, WeatherRainy, WeatherCloudy, WeatherSnowy} {
				for hour := 0; hour < 24; hour++ {
					got := Classify(ctxWith(stress, energy, weather, hour))
					if !known[got.Label] {
						t.Fatalf("classifier produced unknown label %q", got.Label)
					}
				}
			}
		}
	}
}

func TestClassifyClampsOutOfRangeInput(t *testing.T) {
	// stress=15 clamps to 10 and still classifies as Stressed instead of
	// failing.
	got := Classify(ctxWith(15, -3, "Hailstorm", 99))
	if got.Label != LabelStressed {
		t.Errorf("out-of-range context: got %q, want Stressed", got.Label)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	c := ctxWith(6, 7, WeatherSunny, 15)
	first := Classify(c)
	second := Classify(c)
	if first != second {
		t.Errorf("Classify not idempotent: %+v vs %+v", first, second)
	}
}

func TestLabelColorsComplete(t *testing.T) {
	for _, l := range Labels() {
		if _, ok := labelColors[l]; !ok {
			t.Errorf("label %q has no display color", l)
		}
	}
}

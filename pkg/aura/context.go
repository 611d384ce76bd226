package aura

// Weather is the coarse weather condition reported by the UI.
type Weather string

const (
	WeatherSunny  Weather = "Sunny"
	WeatherRainy  Weather = "Rainy"
	WeatherCloudy Weather = "Cloudy"
	WeatherSnowy  Weather = "Snowy"
)

// Slider bounds for stress and energy levels.
const (
	LevelMin = 1
	LevelMax = 10
)

// Biometrics carries the simulated wearable readings attached to a Context.
type Biometrics struct {
	HeartRate     int     `json:"heart_rate"`
	SleepQuality  float64 `json:"sleep_quality"`  // 0-10
	ActivityLevel float64 `json:"activity_level"` // 0-10
}

// Context is a snapshot of the user's situational signals. It is a plain
// value: the session layer owns its lifecycle, the engines only read it.
type Context struct {
	StressLevel    int        `json:"stress_level"` // 1-10
	EnergyLevel    int        `json:"energy_level"` // 1-10
	Weather        Weather    `json:"weather"`
	HourOfDay      int        `json:"hour_of_day"` // 0-23
	CalendarEvents []string   `json:"calendar_events"`
	HealthGoals    []string   `json:"health_goals"`
	Biometrics     Biometrics `json:"biometrics"`
}

// DefaultContext returns the documented session-start defaults.
func DefaultContext() Context {
	return Context{
		StressLevel:    5,
		EnergyLevel:    7,
		Weather:        WeatherSunny,
		HourOfDay:      12,
		CalendarEvents: []string{"Friend's Birthday", "Weekend BBQ", "Gym Session"},
		HealthGoals:    []string{"Weight Management", "Heart Health"},
		Biometrics: Biometrics{
			HeartRate:     72,
			SleepQuality:  8.5,
			ActivityLevel: 6,
		},
	}
}

// ValidWeather reports whether w is one of the known conditions.
func ValidWeather(w Weather) bool {
	switch w {
	case WeatherSunny, WeatherRainy, WeatherCloudy, WeatherSnowy:
		return true
	}
	return false
}

// Normalized returns a copy of the context with every numeric signal clamped
// to its documented domain and unknown weather coerced to Sunny. The sliders
// already enforce these ranges at the input surface; the engines clamp again
// so an out-of-range snapshot degrades instead of misclassifying.
func (c Context) Normalized() Context {
	c.StressLevel = clampInt(c.StressLevel, LevelMin, LevelMax)
	c.EnergyLevel = clampInt(c.EnergyLevel, LevelMin, LevelMax)
	c.HourOfDay = clampInt(c.HourOfDay, 0, 23)
	if !ValidWeather(c.Weather) {
		c.Weather = WeatherSunny
	}
	return c
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

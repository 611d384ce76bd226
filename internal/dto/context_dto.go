// FILE: internal/dto/context_dto.go
package dto

type BiometricsPayload struct {
	HeartRate     int     `json:"heart_rate"`
	SleepQuality  float64 `json:"sleep_quality"`
	ActivityLevel float64 `json:"activity_level"`
}

type ContextResponse struct {
	StressLevel        int               `json:"stress_level"`
	EnergyLevel        int               `json:"energy_level"`
	Weather            string            `json:"weather"`
	HourOfDay          int               `json:"hour_of_day"`
	CalendarEvents     []string          `json:"calendar_events"`
	HealthGoals        []string          `json:"health_goals"`
	Biometrics         BiometricsPayload `json:"biometrics"`
	Intent             string            `json:"intent"`
	SustainabilityPref string            `json:"sustainability_pref"`
	CommunityTrends    []string          `json:"community_trends"`
}

// UpdateContextRequest is a partial update: nil fields keep their current
// values. Out-of-range levels are clamped, not rejected.
type UpdateContextRequest struct {
	StressLevel        *int               `json:"stress_level,omitempty"`
	EnergyLevel        *int               `json:"energy_level,omitempty"`
	Weather            *string            `json:"weather,omitempty" validate:"omitempty,oneof=Sunny Rainy Cloudy Snowy"`
	HourOfDay          *int               `json:"hour_of_day,omitempty"`
	CalendarEvents     *[]string          `json:"calendar_events,omitempty"`
	HealthGoals        *[]string          `json:"health_goals,omitempty"`
	Biometrics         *BiometricsPayload `json:"biometrics,omitempty"`
	Intent             *string            `json:"intent,omitempty" validate:"omitempty,oneof='Just Browsing' 'Quick Errand' 'Weekly Shop' 'Gift Hunt'"`
	SustainabilityPref *string            `json:"sustainability_pref,omitempty" validate:"omitempty,oneof=low medium high"`
}

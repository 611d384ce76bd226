package predict

import (
	"strings"
	"time"

	"project-nexus-be/pkg/aura"
)

// Prediction is one entry in the nearest-first "predicted need" timeline.
type Prediction struct {
	Statement  string  `json:"statement"`
	DaysAhead  int     `json:"days_ahead"`
	Confidence float64 `json:"confidence"` // 0-100
	Basis      string  `json:"basis"`      // which heuristic produced it
}

// Confidence schedule: the first prediction starts at the base and each
// subsequent one loses a fixed step, never dropping below the floor.
const (
	BaseConfidence  = 95.0
	ConfidenceStep  = 2.0
	FloorConfidence = 85.0
	DefaultCount    = 6
)

type config struct {
	now   func() time.Time
	count int
}

// Option tweaks generation; the defaults use the wall clock and a fixed
// count. Tests pin the clock to assert exact output.
type Option func(*config)

func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

func WithCount(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.count = n
		}
	}
}

type candidate struct {
	statement string
	basis     string
}

// Generate combines seasonal, social, health and contextual heuristics into
// a deterministic ranked timeline. It is pure for a given Context and clock:
// calling it twice yields identical output.
func Generate(ctx aura.Context, opts ...Option) []Prediction {
	cfg := config{now: time.Now, count: DefaultCount}
	for _, o := range opts {
		o(&cfg)
	}

	ctx = ctx.Normalized()
	now := cfg.now()

	var pool []candidate
	pool = append(pool, seasonalCandidates(now.Month())...)
	pool = append(pool, socialCandidates(ctx.CalendarEvents)...)
	pool = append(pool, healthCandidates(ctx)...)
	pool = append(pool, contextualCandidates(ctx)...)

	// Deduplicate preserving first occurrence so the ordering stays stable.
	seen := make(map[string]bool, len(pool))
	predictions := make([]Prediction, 0, cfg.count)
	for _, cand := range pool {
		if seen[cand.statement] {
			continue
		}
		seen[cand.statement] = true

		i := len(predictions)
		predictions = append(predictions, Prediction{
			Statement:  cand.statement,
			DaysAhead:  i + 1,
			Confidence: confidenceAt(i),
			Basis:      cand.basis,
		})
		if len(predictions) == cfg.count {
			break
		}
	}

	return predictions
}

func confidenceAt(index int) float64 {
	c := BaseConfidence - ConfidenceStep*float64(index)
	if c < FloorConfidence {
		return FloorConfidence
	}
	return c
}

// socialCandidates scans upcoming calendar events for shopping triggers.
func socialCandidates(events []string) []candidate {
	var out []candidate
	for _, event := range events {
		lower := strings.ToLower(event)
		switch {
		case strings.Contains(lower, "birthday"):
			out = append(out, candidate{"Gift ideas for a birthday celebration", "social calendar"})
		case strings.Contains(lower, "party"):
			out = append(out, candidate{"Party supplies and decorations", "social calendar"})
		case strings.Contains(lower, "meeting"):
			out = append(out, candidate{"Professional attire and accessories", "social calendar"})
		case strings.Contains(lower, "bbq"):
			out = append(out, candidate{"BBQ essentials and outdoor dining", "social calendar"})
		case strings.Contains(lower, "gym"):
			out = append(out, candidate{"Fitness gear and protein supplements", "social calendar"})
		}
	}
	return out
}

func healthCandidates(ctx aura.Context) []candidate {
	var out []candidate
	for _, goal := range ctx.HealthGoals {
		switch goal {
		case "Weight Management":
			out = append(out, candidate{"Healthy snacks and portion control tools", "health goals"})
		case "Heart Health":
			out = append(out, candidate{"Heart-healthy foods and omega-3 supplements", "health goals"})
		}
	}
	if ctx.Biometrics.ActivityLevel > 0 && ctx.Biometrics.ActivityLevel < 5 {
		out = append(out, candidate{"Activity trackers and motivation tools", "biometrics"})
	}
	if ctx.Biometrics.SleepQuality > 0 && ctx.Biometrics.SleepQuality < 6 {
		out = append(out, candidate{"Sleep aids and evening wind-down products", "biometrics"})
	}
	return out
}

func contextualCandidates(ctx aura.Context) []candidate {
	var out []candidate
	switch ctx.Weather {
	case aura.WeatherRainy:
		out = append(out, candidate{"Umbrellas and waterproof jackets", "weather"})
	case aura.WeatherSunny:
		out = append(out, candidate{"Sunscreen and outdoor gear", "weather"})
	case aura.WeatherSnowy:
		out = append(out, candidate{"Winter gear and heating supplies", "weather"})
	case aura.WeatherCloudy:
		out = append(out, candidate{"Indoor activities and comfort food", "weather"})
	}

	switch {
	case ctx.HourOfDay < 12:
		out = append(out, candidate{"Breakfast items and morning coffee", "time of day"})
	case ctx.HourOfDay < 17:
		out = append(out, candidate{"Lunch options and afternoon snacks", "time of day"})
	default:
		out = append(out, candidate{"Dinner ingredients and evening relaxation", "time of day"})
	}
	return out
}

package aura

// Label is the discrete mood the classifier assigns to a Context.
type Label string

const (
	LabelBalanced  Label = "Balanced"
	LabelStressed  Label = "Stressed"
	LabelEnergetic Label = "Energetic"
	LabelCozy      Label = "Cozy"
	LabelVibrant   Label = "Vibrant"
	LabelRestful   Label = "Restful"
	LabelCalm      Label = "Calm"
)

// Labels returns every mood label in a stable order. The recommendation
// table is checked against this list, so adding a label here without a table
// entry is caught by tests.
func Labels() []Label {
	return []Label{
		LabelBalanced,
		LabelStressed,
		LabelEnergetic,
		LabelCozy,
		LabelVibrant,
		LabelRestful,
		LabelCalm,
	}
}

// Result is the classifier output: a mood label plus its display color.
// It is derived, never stored — always recompute from the current Context.
type Result struct {
	Label Label  `json:"label"`
	Color string `json:"color"`
}

var labelColors = map[Label]string{
	LabelBalanced:  "#3b82f6",
	LabelStressed:  "#ef4444",
	LabelEnergetic: "#f59e0b",
	LabelCozy:      "#8b5cf6",
	LabelVibrant:   "#eab308",
	LabelRestful:   "#6366f1",
	LabelCalm:      "#10b981",
}

// Rule is one (predicate, outcome) pair in the classifier's ordered rule
// list. Predicates overlap, so evaluation order is part of the contract:
// the first matching rule wins.
type Rule struct {
	Name    string
	Matches func(Context) bool
	Outcome Label
}

func nightHour(hour int) bool {
	return hour >= 22 || hour < 6
}

// DefaultRules returns the canonical rule ordering. Reordering these changes
// observable behavior; the ordering is covered by explicit tests.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    "high-stress",
			Matches: func(c Context) bool { return c.StressLevel > 7 },
			Outcome: LabelStressed,
		},
		{
			Name:    "high-energy",
			Matches: func(c Context) bool { return c.EnergyLevel > 8 },
			Outcome: LabelEnergetic,
		},
		{
			// Low energy with no stronger weather or time signal. Sunny
			// weather and night hours defer to the vibrant/restful rules.
			Name: "low-energy-cozy",
			Matches: func(c Context) bool {
				return c.EnergyLevel <= 5 && c.Weather != WeatherSunny && !nightHour(c.HourOfDay)
			},
			Outcome: LabelCozy,
		},
		{
			Name: "sunny-vibrant",
			Matches: func(c Context) bool {
				return c.Weather == WeatherSunny && c.EnergyLevel > 6
			},
			Outcome: LabelVibrant,
		},
		{
			Name:    "night-restful",
			Matches: func(c Context) bool { return nightHour(c.HourOfDay) },
			Outcome: LabelRestful,
		},
	}
}

// Classify maps a Context to its aura using the default rule ordering.
// It is total: every context, including out-of-range ones, yields a result.
func Classify(c Context) Result {
	return ClassifyWith(DefaultRules(), c)
}

// ClassifyWith evaluates an explicit rule list in order, first match wins,
// falling back to Balanced when nothing matches.
func ClassifyWith(rules []Rule, c Context) Result {
	c = c.Normalized()
	for _, rule := range rules {
		if rule.Matches(c) {
			return Result{Label: rule.Outcome, Color: colorFor(rule.Outcome)}
		}
	}
	return Result{Label: LabelBalanced, Color: colorFor(LabelBalanced)}
}

func colorFor(l Label) string {
	if color, ok := labelColors[l]; ok {
		return color
	}
	// Unknown labels can only come from a custom ruleset; fall back to the
	// balanced color rather than render an empty swatch.
	return labelColors[LabelBalanced]
}

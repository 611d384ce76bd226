package sustain

import "math"

// CartItem carries the sustainability attributes the aggregator folds over.
// The attributes are owned by the product store; the cart only references
// them.
type CartItem struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	EcoScore        int     `json:"eco_score"` // 0-100
	CarbonFootprint float64 `json:"carbon_footprint"`
}

// Grade is the letter grade derived from an eco score.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
)

// Grade step boundaries. These are fixed constants: changing one is an
// observable behavior change and each boundary is pinned by a test.
const (
	gradeAPlusMin = 90
	gradeAMin     = 80
	gradeBPlusMin = 70
	gradeBMin     = 60
	gradeCPlusMin = 45
)

// History items count at half the weight of current cart items so recent
// choices dominate the score.
const historyWeight = 0.5

// Report is the aggregated sustainability summary for a cart plus purchase
// history.
type Report struct {
	EcoScore          int     `json:"eco_score"` // 0-100
	CarbonFootprintKg float64 `json:"carbon_footprint_kg"`
	EcoGrade          Grade   `json:"eco_grade"`
}

// Aggregate folds cart and history into a Report. Empty input is not an
// error: it yields the zero report with the lowest grade. The eco score is
// the weighted average of item scores rounded half away from zero and
// clamped to [0,100]; the footprint is a plain sum.
func Aggregate(cart, history []CartItem) Report {
	var weightedSum, totalWeight, carbon float64

	for _, item := range cart {
		weightedSum += float64(item.EcoScore)
		totalWeight++
		carbon += item.CarbonFootprint
	}
	for _, item := range history {
		weightedSum += float64(item.EcoScore) * historyWeight
		totalWeight += historyWeight
	}

	score := 0
	if totalWeight > 0 {
		score = clampScore(int(math.Round(weightedSum / totalWeight)))
	}

	return Report{
		EcoScore:          score,
		CarbonFootprintKg: carbon,
		EcoGrade:          GradeFor(score),
	}
}

// GradeFor maps an eco score to its letter grade. Monotonic step function.
func GradeFor(score int) Grade {
	switch {
	case score >= gradeAPlusMin:
		return GradeAPlus
	case score >= gradeAMin:
		return GradeA
	case score >= gradeBPlusMin:
		return GradeBPlus
	case score >= gradeBMin:
		return GradeB
	case score >= gradeCPlusMin:
		return GradeCPlus
	default:
		return GradeC
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

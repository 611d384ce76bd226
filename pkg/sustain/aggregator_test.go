package sustain

import (
	"math"
	"testing"
)

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil, nil)
	if report.EcoScore != 0 {
		t.Errorf("EcoScore = %d, want 0", report.EcoScore)
	}
	if report.CarbonFootprintKg != 0 {
		t.Errorf("CarbonFootprintKg = %.2f, want 0", report.CarbonFootprintKg)
	}
	if report.EcoGrade != GradeC {
		t.Errorf("EcoGrade = %q, want %q", report.EcoGrade, GradeC)
	}
}

func TestAggregateCartAverage(t *testing.T) {
	cart := []CartItem{
		{Name: "Bamboo Toothbrush", EcoScore: 10, CarbonFootprint: 0.1},
		{Name: "Bluetooth Speaker", EcoScore: 6, CarbonFootprint: 3.5},
	}
	report := Aggregate(cart, nil)

	if report.EcoScore != 8 {
		t.Errorf("EcoScore = %d, want 8", report.EcoScore)
	}
	if math.Abs(report.CarbonFootprintKg-3.6) > 1e-9 {
		t.Errorf("CarbonFootprintKg = %.2f, want 3.6", report.CarbonFootprintKg)
	}
}

func TestAggregateHistoryHalfWeight(t *testing.T) {
	cart := []CartItem{{EcoScore: 90}}
	history := []CartItem{{EcoScore: 30}, {EcoScore: 30}}

	// (90*1 + 30*0.5 + 30*0.5) / (1 + 0.5 + 0.5) = 120/2 = 60
	report := Aggregate(cart, history)
	if report.EcoScore != 60 {
		t.Errorf("EcoScore = %d, want 60", report.EcoScore)
	}
	// History does not contribute to the cart footprint.
	if report.CarbonFootprintKg != 0 {
		t.Errorf("CarbonFootprintKg = %.2f, want 0", report.CarbonFootprintKg)
	}
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeAPlus},
		{90, GradeAPlus},
		{89, GradeA},
		{80, GradeA},
		{79, GradeBPlus},
		{70, GradeBPlus},
		{69, GradeB},
		{60, GradeB},
		{59, GradeCPlus},
		{45, GradeCPlus},
		{44, GradeC},
		{0, GradeC},
	}

	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.want {
			t.Errorf("GradeFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAggregateClampsScore(t *testing.T) {
	report := Aggregate([]CartItem{{EcoScore: 250}}, nil)
	if report.EcoScore != 100 {
		t.Errorf("EcoScore = %d, want 100 (clamped)", report.EcoScore)
	}
	report = Aggregate([]CartItem{{EcoScore: -40}}, nil)
	if report.EcoScore != 0 {
		t.Errorf("EcoScore = %d, want 0 (clamped)", report.EcoScore)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	cart := []CartItem{{EcoScore: 75, CarbonFootprint: 1.5}}
	history := []CartItem{{EcoScore: 50, CarbonFootprint: 2.0}}

	first := Aggregate(cart, history)
	second := Aggregate(cart, history)
	if first != second {
		t.Errorf("Aggregate not idempotent: %+v vs %+v", first, second)
	}
}

func TestAlternativeFor(t *testing.T) {
	if got := AlternativeFor("Plastic Bottle"); got != "Reusable stainless steel bottle" {
		t.Errorf("AlternativeFor(plastic bottle) = %q", got)
	}
	if got := AlternativeFor("Smart Watch"); got != "Eco-friendly Smart Watch" {
		t.Errorf("AlternativeFor(unknown) = %q", got)
	}
}

func TestWasteReduction(t *testing.T) {
	got := WasteReduction([]string{"reusable_bags", "water_bottle", "unknown"})
	if got != 521 {
		t.Errorf("WasteReduction = %d, want 521", got)
	}
	if WasteReduction(nil) != 0 {
		t.Error("WasteReduction(nil) should be 0")
	}
}

package predict

import (
	"reflect"
	"testing"
	"time"

	"project-nexus-be/pkg/aura"
)

func fixedClock(month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(2025, month, 15, 10, 0, 0, 0, time.UTC)
	}
}

func TestGenerateConfidenceNonIncreasing(t *testing.T) {
	preds := Generate(aura.DefaultContext(), WithClock(fixedClock(time.June)), WithCount(8))
	if len(preds) == 0 {
		t.Fatal("expected predictions, got none")
	}
	for i := 1; i < len(preds); i++ {
		if preds[i].Confidence > preds[i-1].Confidence {
			t.Errorf("confidence increased at index %d: %.1f > %.1f", i, preds[i].Confidence, preds[i-1].Confidence)
		}
	}
	for i, p := range preds {
		if p.Confidence < FloorConfidence || p.Confidence > BaseConfidence {
			t.Errorf("confidence[%d] = %.1f outside [%.1f, %.1f]", i, p.Confidence, FloorConfidence, BaseConfidence)
		}
	}
}

func TestGenerateDaysAheadSequence(t *testing.T) {
	preds := Generate(aura.DefaultContext(), WithClock(fixedClock(time.March)))
	for i, p := range preds {
		if p.DaysAhead != i+1 {
			t.Errorf("prediction %d: DaysAhead = %d, want %d", i, p.DaysAhead, i+1)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	ctx := aura.DefaultContext()
	clock := fixedClock(time.October)

	first := Generate(ctx, WithClock(clock))
	second := Generate(ctx, WithClock(clock))
	if !reflect.DeepEqual(first, second) {
		t.Error("Generate is not deterministic for identical input")
	}
}

func TestGenerateSeasonalFirst(t *testing.T) {
	preds := Generate(aura.DefaultContext(), WithClock(fixedClock(time.December)))
	if len(preds) < 3 {
		t.Fatalf("expected at least 3 predictions, got %d", len(preds))
	}
	want := []string{"Winter clothes", "Holiday gifts", "Comfort food"}
	for i, w := range want {
		if preds[i].Statement != w {
			t.Errorf("prediction %d = %q, want %q", i, preds[i].Statement, w)
		}
		if preds[i].Basis != "seasonal" {
			t.Errorf("prediction %d basis = %q, want seasonal", i, preds[i].Basis)
		}
	}
}

func TestGenerateBirthdayTrigger(t *testing.T) {
	ctx := aura.DefaultContext()
	ctx.CalendarEvents = []string{"Friend's Birthday"}
	ctx.HealthGoals = nil

	preds := Generate(ctx, WithClock(fixedClock(time.June)), WithCount(8))
	found := false
	for _, p := range preds {
		if p.Statement == "Gift ideas for a birthday celebration" {
			found = true
		}
	}
	if !found {
		t.Error("birthday event did not produce a gift prediction")
	}
}

func TestGenerateFixedCount(t *testing.T) {
	preds := Generate(aura.DefaultContext(), WithClock(fixedClock(time.June)))
	if len(preds) != DefaultCount {
		t.Errorf("got %d predictions, want %d", len(preds), DefaultCount)
	}

	preds = Generate(aura.DefaultContext(), WithClock(fixedClock(time.June)), WithCount(3))
	if len(preds) != 3 {
		t.Errorf("got %d predictions, want 3", len(preds))
	}
}

func TestGenerateNoDuplicateStatements(t *testing.T) {
	ctx := aura.DefaultContext()
	ctx.CalendarEvents = []string{"Birthday A", "Birthday B", "Birthday C"}

	preds := Generate(ctx, WithClock(fixedClock(time.June)), WithCount(10))
	seen := make(map[string]bool)
	for _, p := range preds {
		if seen[p.Statement] {
			t.Errorf("duplicate statement %q", p.Statement)
		}
		seen[p.Statement] = true
	}
}

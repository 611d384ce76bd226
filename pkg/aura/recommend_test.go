package aura

import (
	"errors"
	"testing"
)

func TestRecommendationTableComplete(t *testing.T) {
	for _, l := range Labels() {
		set, err := RecommendationsFor(l)
		if err != nil {
			t.Fatalf("RecommendationsFor(%q) returned error: %v", l, err)
		}
		if len(set.Categories) == 0 {
			t.Errorf("label %q has no categories", l)
		}
		if len(set.Products) == 0 {
			t.Errorf("label %q has no products", l)
		}
	}
}

func TestRecommendationsForUnknownLabel(t *testing.T) {
	_, err := RecommendationsFor(Label("Moody"))
	if err == nil {
		t.Fatal("expected error for unknown label, got nil")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

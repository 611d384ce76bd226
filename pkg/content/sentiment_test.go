package content

import (
	"context"
	"errors"
	"testing"
)

func TestLabelFor(t *testing.T) {
	tests := []struct {
		name     string
		polarity float64
		want     string
	}{
		{"clearly positive", 0.8, SentimentPositive},
		{"just above threshold", 0.21, SentimentPositive},
		{"at positive threshold", 0.2, SentimentNeutral},
		{"zero", 0, SentimentNeutral},
		{"at negative threshold", -0.2, SentimentNeutral},
		{"just below threshold", -0.21, SentimentNegative},
		{"clearly negative", -0.9, SentimentNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelFor(tt.polarity); got != tt.want {
				t.Errorf("LabelFor(%v) = %q, want %q", tt.polarity, got, tt.want)
			}
		})
	}
}

func TestLexiconScorer(t *testing.T) {
	scorer := NewLexiconScorer()
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"all positive", "I love this amazing fresh produce", 1},
		{"all negative", "terrible awful service", -1},
		{"mixed", "great product but terrible packaging", 0},
		{"no sentiment words", "the quarterly report is on the desk", 0},
		{"punctuation stripped", "I love it!", 1},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scorer.Score(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Score(%q) returned error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Score(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

type failingScorer struct{}

func (failingScorer) Score(context.Context, string) (float64, error) {
	return 0, ErrUnavailable
}

func TestFallbackScorerUsesSecondary(t *testing.T) {
	scorer := NewFallbackScorer(failingScorer{}, NewLexiconScorer())
	got, err := scorer.Score(context.Background(), "I love this")
	if err != nil {
		t.Fatalf("fallback score failed: %v", err)
	}
	if got != 1 {
		t.Errorf("fallback score = %v, want 1", got)
	}
}

func TestHFSentimentScorerRequiresToken(t *testing.T) {
	scorer := NewHFSentimentScorer("", "", "")
	_, err := scorer.Score(context.Background(), "anything")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable without token, got %v", err)
	}
}

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Sentiment label thresholds on the polarity scale [-1, 1].
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// SentimentScorer maps free text to a polarity in [-1, 1].
type SentimentScorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// LabelFor buckets a polarity into positive/negative/neutral.
func LabelFor(polarity float64) string {
	switch {
	case polarity > positiveThreshold:
		return SentimentPositive
	case polarity < negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// HFSentimentScorer scores text with a HuggingFace sentiment model.
type HFSentimentScorer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewHFSentimentScorer(apiKey, baseURL, model string) *HFSentimentScorer {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co/models"
	}
	if model == "" {
		model = "distilbert-base-uncased-finetuned-sst-2-english"
	}
	return &HFSentimentScorer{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

type hfSentimentLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (s *HFSentimentScorer) Score(ctx context.Context, text string) (float64, error) {
	if s.apiKey == "" {
		return 0, fmt.Errorf("no huggingface token configured: %w", ErrUnavailable)
	}

	jsonData, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("huggingface api error (status %d): %w", resp.StatusCode, ErrUnavailable)
	}

	// The inference API returns a nested array of label scores.
	var result [][]hfSentimentLabel
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result) == 0 || len(result[0]) == 0 {
		return 0, fmt.Errorf("empty sentiment result: %w", ErrUnavailable)
	}

	var polarity float64
	for _, l := range result[0] {
		switch strings.ToUpper(l.Label) {
		case "POSITIVE":
			polarity += l.Score
		case "NEGATIVE":
			polarity -= l.Score
		}
	}
	return polarity, nil
}

// LexiconScorer is the offline fallback scorer. It counts hits against small
// positive and negative word lists and averages them over matched words.
type LexiconScorer struct{}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

var positiveWords = map[string]struct{}{
	"love": {}, "great": {}, "good": {}, "amazing": {}, "excellent": {},
	"happy": {}, "wonderful": {}, "fantastic": {}, "best": {}, "awesome": {},
	"fresh": {}, "delicious": {}, "perfect": {}, "enjoy": {}, "like": {},
}

var negativeWords = map[string]struct{}{
	"hate": {}, "bad": {}, "terrible": {}, "awful": {}, "worst": {},
	"sad": {}, "angry": {}, "disappointed": {}, "stale": {}, "broken": {},
	"expensive": {}, "dislike": {}, "horrible": {}, "poor": {}, "gross": {},
}

func (s *LexiconScorer) Score(_ context.Context, text string) (float64, error) {
	words := strings.Fields(strings.ToLower(text))
	var score float64
	var hits int
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:'\"")
		if _, ok := positiveWords[w]; ok {
			score++
			hits++
		} else if _, ok := negativeWords[w]; ok {
			score--
			hits++
		}
	}
	if hits == 0 {
		return 0, nil
	}
	return score / float64(hits), nil
}

// FallbackScorer tries a primary scorer and falls back to a secondary one
// when the primary is unavailable.
type FallbackScorer struct {
	primary   SentimentScorer
	secondary SentimentScorer
}

func NewFallbackScorer(primary, secondary SentimentScorer) *FallbackScorer {
	return &FallbackScorer{primary: primary, secondary: secondary}
}

func (s *FallbackScorer) Score(ctx context.Context, text string) (float64, error) {
	polarity, err := s.primary.Score(ctx, text)
	if err != nil {
		return s.secondary.Score(ctx, text)
	}
	return polarity, nil
}

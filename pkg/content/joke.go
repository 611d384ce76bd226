package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// JokeProvider fetches a one-liner to lighten the dashboard.
type JokeProvider interface {
	Joke(ctx context.Context) (string, error)
}

// JokeAPIProvider pulls single-part jokes from jokeapi.dev. No key needed.
type JokeAPIProvider struct {
	baseURL string
	client  *http.Client
}

func NewJokeAPIProvider(baseURL string) *JokeAPIProvider {
	if baseURL == "" {
		baseURL = "https://v2.jokeapi.dev"
	}
	return &JokeAPIProvider{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

type jokeResponse struct {
	Error bool   `json:"error"`
	Joke  string `json:"joke"`
}

func (p *JokeAPIProvider) Joke(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/joke/Any?type=single", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("jokeapi error (status %d): %w", resp.StatusCode, ErrUnavailable)
	}

	var jokeResp jokeResponse
	if err := json.Unmarshal(bodyBytes, &jokeResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if jokeResp.Error || jokeResp.Joke == "" {
		return "", fmt.Errorf("no joke in response: %w", ErrUnavailable)
	}
	return jokeResp.Joke, nil
}

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ImageGenerator renders a product visualization from a text prompt and
// returns the raw image bytes.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// HFImageGenerator calls a HuggingFace text-to-image model.
type HFImageGenerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewHFImageGenerator(apiKey, baseURL, model string) *HFImageGenerator {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co/models"
	}
	if model == "" {
		model = "stabilityai/stable-diffusion-2-1"
	}
	return &HFImageGenerator{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

func (g *HFImageGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("no huggingface token configured: %w", ErrUnavailable)
	}

	jsonData, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.apiKey))

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("huggingface api error (status %d): %w", resp.StatusCode, ErrUnavailable)
	}
	if len(bodyBytes) == 0 {
		return nil, fmt.Errorf("empty image response: %w", ErrUnavailable)
	}
	return bodyBytes, nil
}

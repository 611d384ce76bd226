// FILE: internal/dto/assistant_dto.go
package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	// Degraded flags a canned reply served because no AI backend is configured.
	Degraded bool `json:"degraded,omitempty"`
}

type SentimentRequest struct {
	Text string `json:"text" validate:"required"`
}

type SentimentResponse struct {
	Polarity float64 `json:"polarity"`
	Label    string  `json:"label"`
}

type JokeResponse struct {
	Joke string `json:"joke"`
}

type ImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type VoiceRequest struct {
	Command string `json:"command" validate:"required"`
}

type VoiceResponse struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

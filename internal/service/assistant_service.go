// FILE: internal/service/assistant_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/pkg/logger"
	"project-nexus-be/pkg/aura"
	"project-nexus-be/pkg/content"
	"project-nexus-be/pkg/events"
	"project-nexus-be/pkg/llm"
)

// systemPrompt frames the LLM as the in-store assistant.
const systemPrompt = "You are Nexus, a friendly AI shopping assistant for a smart retail store. " +
	"Help shoppers find products, explain sustainability scores, and keep answers short."

type IAssistantService interface {
	Chat(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	Sentiment(ctx context.Context, req *dto.SentimentRequest) (*dto.SentimentResponse, error)
	Joke(ctx context.Context) (*dto.JokeResponse, error)
	GenerateImage(ctx context.Context, req *dto.ImageRequest) ([]byte, error)
	Voice(ctx context.Context, userID string, req *dto.VoiceRequest) (*dto.VoiceResponse, error)
}

type assistantService struct {
	llmProvider llm.LLMProvider
	scorer      content.SentimentScorer
	jokes       content.JokeProvider
	images      content.ImageGenerator
	sessions    ISessionService
	publisher   IPublisherService
	log         logger.ILogger
}

func NewAssistantService(
	llmProvider llm.LLMProvider,
	scorer content.SentimentScorer,
	jokes content.JokeProvider,
	images content.ImageGenerator,
	sessions ISessionService,
	publisher IPublisherService,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		llmProvider: llmProvider,
		scorer:      scorer,
		jokes:       jokes,
		images:      images,
		sessions:    sessions,
		publisher:   publisher,
		log:         log,
	}
}

func (s *assistantService) Chat(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	session := s.sessions.GetOrCreate(ctx, userID)
	mood := aura.Classify(session.Context)

	history := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "system", Content: fmt.Sprintf("The shopper's current mood is %s.", mood.Label)},
		{Role: "user", Content: req.Message},
	}

	reply, err := s.llmProvider.Chat(ctx, history, llm.WithMaxTokens(300))
	if err != nil {
		if !errors.Is(err, llm.ErrDisabled) {
			s.log.Warn("assistant", "llm chat failed, serving canned reply", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return &dto.ChatResponse{
			Reply:    cannedReply(mood.Label),
			Degraded: true,
		}, nil
	}
	return &dto.ChatResponse{Reply: reply}, nil
}

func (s *assistantService) Sentiment(ctx context.Context, req *dto.SentimentRequest) (*dto.SentimentResponse, error) {
	polarity, err := s.scorer.Score(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	return &dto.SentimentResponse{
		Polarity: polarity,
		Label:    content.LabelFor(polarity),
	}, nil
}

func (s *assistantService) Joke(ctx context.Context) (*dto.JokeResponse, error) {
	joke, err := s.jokes.Joke(ctx)
	if err != nil {
		if errors.Is(err, content.ErrUnavailable) {
			// Serve the offline standby so the dashboard widget never breaks.
			return &dto.JokeResponse{Joke: "Why did the shopper bring a ladder? The best deals were on the top shelf."}, nil
		}
		return nil, err
	}
	return &dto.JokeResponse{Joke: joke}, nil
}

func (s *assistantService) GenerateImage(ctx context.Context, req *dto.ImageRequest) ([]byte, error) {
	return s.images.GenerateImage(ctx, req.Prompt)
}

func (s *assistantService) Voice(ctx context.Context, userID string, req *dto.VoiceRequest) (*dto.VoiceResponse, error) {
	reply := content.RespondToVoice(req.Command)

	_ = s.publisher.PublishInteraction(ctx, events.NewInteraction(events.TypeVoiceCommand, userID, map[string]interface{}{
		"action":  string(reply.Action),
		"command": req.Command,
	}))

	return &dto.VoiceResponse{
		Action:  string(reply.Action),
		Message: reply.Message,
	}, nil
}

func cannedReply(label aura.Label) string {
	switch label {
	case aura.LabelStressed:
		return "It sounds like a hectic day. I've pulled together some calming picks in your recommendations."
	case aura.LabelEnergetic:
		return "You're full of energy today! Check the recommendations tab for active lifestyle picks."
	default:
		return "I'm here to help you shop. Ask me about products, your aura, or sustainability scores."
	}
}

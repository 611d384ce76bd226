package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/pkg/logger"
	"project-nexus-be/internal/repository/memory"
	"project-nexus-be/pkg/content"
	"project-nexus-be/pkg/events"
	"project-nexus-be/pkg/llm"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

type stubLLM struct {
	reply string
}

func (s stubLLM) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return s.reply, nil
}

func (s stubLLM) Generate(context.Context, string, ...llm.Option) (string, error) {
	return s.reply, nil
}

type failingJokes struct{}

func (failingJokes) Joke(context.Context) (string, error) {
	return "", content.ErrUnavailable
}

type fixedJokes struct{ joke string }

func (j fixedJokes) Joke(context.Context) (string, error) { return j.joke, nil }

func newTestAssistant(provider llm.LLMProvider, jokes content.JokeProvider) (IAssistantService, *capturingPublisher) {
	pub := &capturingPublisher{}
	sessions := NewSessionService(memory.NewSessionRepository(time.Hour), pub)
	svc := NewAssistantService(
		provider,
		content.NewLexiconScorer(),
		jokes,
		content.NewHFImageGenerator("", "", ""),
		sessions,
		pub,
		nopLogger{},
	)
	return svc, pub
}

func TestChatUsesProviderReply(t *testing.T) {
	svc, _ := newTestAssistant(stubLLM{reply: "Here are some picks."}, fixedJokes{})

	res, err := svc.Chat(context.Background(), "user-1", &dto.ChatRequest{Message: "what should I buy?"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if res.Reply != "Here are some picks." {
		t.Errorf("Reply = %q, want provider reply", res.Reply)
	}
	if res.Degraded {
		t.Error("expected non-degraded reply from a working provider")
	}
}

func TestChatDegradesWhenProviderDisabled(t *testing.T) {
	svc, _ := newTestAssistant(llm.NewDisabledProvider("missing huggingface token"), fixedJokes{})

	res, err := svc.Chat(context.Background(), "user-1", &dto.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("Chat should not fail when provider is disabled: %v", err)
	}
	if !res.Degraded {
		t.Error("expected degraded flag with disabled provider")
	}
	if res.Reply == "" {
		t.Error("expected a canned reply, got empty string")
	}
}

func TestSentimentLabels(t *testing.T) {
	svc, _ := newTestAssistant(stubLLM{}, fixedJokes{})

	res, err := svc.Sentiment(context.Background(), &dto.SentimentRequest{Text: "I love this amazing store"})
	if err != nil {
		t.Fatalf("Sentiment failed: %v", err)
	}
	if res.Label != content.SentimentPositive {
		t.Errorf("Label = %q, want %q", res.Label, content.SentimentPositive)
	}
	if res.Polarity <= 0 {
		t.Errorf("Polarity = %v, want > 0", res.Polarity)
	}
}

func TestJokeFallsBackWhenUnavailable(t *testing.T) {
	svc, _ := newTestAssistant(stubLLM{}, failingJokes{})

	res, err := svc.Joke(context.Background())
	if err != nil {
		t.Fatalf("Joke should degrade, not fail: %v", err)
	}
	if res.Joke == "" {
		t.Error("expected standby joke, got empty string")
	}
}

func TestJokePassesThroughProvider(t *testing.T) {
	svc, _ := newTestAssistant(stubLLM{}, fixedJokes{joke: "A genuinely fresh joke."})

	res, err := svc.Joke(context.Background())
	if err != nil {
		t.Fatalf("Joke failed: %v", err)
	}
	if res.Joke != "A genuinely fresh joke." {
		t.Errorf("Joke = %q, want provider joke", res.Joke)
	}
}

func TestVoicePublishesInteraction(t *testing.T) {
	svc, pub := newTestAssistant(stubLLM{}, fixedJokes{})

	res, err := svc.Voice(context.Background(), "user-1", &dto.VoiceRequest{Command: "add milk to cart"})
	if err != nil {
		t.Fatalf("Voice failed: %v", err)
	}
	if res.Action != string(content.ActionAddToCart) {
		t.Errorf("Action = %q, want %q", res.Action, content.ActionAddToCart)
	}
	if !strings.Contains(res.Message, "cart") {
		t.Errorf("unexpected voice message: %q", res.Message)
	}

	var found bool
	for _, e := range pub.published {
		if e.EventType() == events.TypeVoiceCommand {
			found = true
		}
	}
	if !found {
		t.Error("expected a voice command interaction event")
	}
}

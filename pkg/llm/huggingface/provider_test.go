package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-nexus-be/pkg/llm"
)

func TestChatSendsAuthAndModel(t *testing.T) {
	var got chatRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"try the oat milk"}}]}`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("hf_test_token", srv.URL, "test-model")
	reply, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, llm.WithMaxTokens(42))
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if reply != "try the oat milk" {
		t.Errorf("reply = %q", reply)
	}
	if auth != "Bearer hf_test_token" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.Model != "test-model" {
		t.Errorf("model = %q, want test-model", got.Model)
	}
	if got.MaxTokens != 42 {
		t.Errorf("max_tokens = %d, want 42", got.MaxTokens)
	}
}

func TestChatSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`rate limited`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("", srv.URL, "test-model")
	if _, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestChatRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("", srv.URL, "test-model")
	if _, err := p.Generate(context.Background(), "hi"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

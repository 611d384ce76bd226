package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrDisabled is returned by DisabledProvider for every call. Callers should
// treat it as "feature off" rather than a transient failure.
var ErrDisabled = errors.New("llm provider disabled")

// DisabledProvider is the no-op backend used when no LLM is configured.
type DisabledProvider struct {
	reason string
}

var _ LLMProvider = &DisabledProvider{}

func NewDisabledProvider(reason string) *DisabledProvider {
	return &DisabledProvider{reason: reason}
}

func (p *DisabledProvider) Chat(_ context.Context, _ []Message, _ ...Option) (string, error) {
	return "", fmt.Errorf("%s: %w", p.reason, ErrDisabled)
}

func (p *DisabledProvider) Generate(_ context.Context, _ string, _ ...Option) (string, error) {
	return "", fmt.Errorf("%s: %w", p.reason, ErrDisabled)
}

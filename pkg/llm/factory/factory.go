package factory

import (
	"fmt"

	"project-nexus-be/pkg/llm"
	"project-nexus-be/pkg/llm/huggingface"
	"project-nexus-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "huggingface":
		if apiKey == "" {
			// No token means the AI assistant degrades instead of the app failing to boot.
			return llm.NewDisabledProvider("missing huggingface token"), nil
		}
		return huggingface.NewHuggingFaceProvider(apiKey, baseURL, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "disabled", "":
		return llm.NewDisabledProvider("llm provider disabled"), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}

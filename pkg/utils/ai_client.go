package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClientInterface is the single outbound contract the planner
// needs: one prompt in, one raw completion out. Transport failures come
// back wrapped in ErrTransport so callers can route them to the fallback
// path without inspecting provider details.
type CompletionClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewCompletionClient creates either an OpenAI or Gemini client based on config.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

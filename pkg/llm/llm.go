package llm

import (
	"context"
	"fmt"
	"time"
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Options are the sampling and transport knobs shared by every provider.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	// MaxRetries is handed to the provider SDK. Zero disables retries.
	MaxRetries int
	Timeout    time.Duration
	// JSONMode asks providers that support it for a JSON object response.
	JSONMode bool
}

// ProviderError is a failed completion call. Body holds the upstream error payload, if any.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s http %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

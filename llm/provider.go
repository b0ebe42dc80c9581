package llm

import (
	"context"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Name() string
	Models() []string
}

// Config carries provider construction parameters.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

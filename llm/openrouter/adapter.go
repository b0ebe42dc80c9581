package openrouter

import (
	"context"
	"fmt"

	"goodfoods/llm"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "meta-llama/llama-3.1-8b-instruct"

// Provider implements the llm.Provider interface for OpenRouter
type Provider struct {
	client *Client
	model  string
}

// NewProvider creates an OpenRouter provider
func NewProvider(cfg llm.Config) *Provider {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Provider{
		client: NewClientWithBaseURL(cfg.APIKey, cfg.BaseURL),
		model:  model,
	}
}

// Complete implements llm.Provider
func (p *Provider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("provider not initialized")
	}
	return p.client.Complete(ctx, req, p.model)
}

// Name implements llm.Provider
func (p *Provider) Name() string {
	return "openrouter"
}

// Models implements llm.Provider
func (p *Provider) Models() []string {
	return []string{
		DefaultModel,
		"meta-llama/llama-3.3-70b-instruct",
		"openai/gpt-4o-mini",
		"anthropic/claude-3.5-sonnet",
		"qwen/qwen-2.5-72b-instruct",
	}
}

package gemini

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"goodfoods/llm"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "models/gemini-1.5-pro"

// Provider implements llm.Provider on top of the Gemini SDK. Gemini
// has no OpenAI-style tool_calls channel here, so conversations are
// flattened into a single prompt and tool directives come back as text
// for the caller to parse.
type Provider struct {
	model *genai.GenerativeModel
	name  string
}

// NewProvider creates a Gemini provider.
func NewProvider(cfg llm.Config) *Provider {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	name := cfg.Model
	if name == "" {
		name = DefaultModel
	}
	model := client.GenerativeModel(name)
	return &Provider{model: model, name: name}
}

// Complete implements llm.Provider.
func (p *Provider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	model := *p.model
	if req.Temperature > 0 {
		model.SetTemperature(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(flattenPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return &llm.CompletionResponse{Model: p.name}, nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	out := &llm.CompletionResponse{
		Text:  sb.String(),
		Model: p.name,
	}
	if resp.UsageMetadata != nil {
		out.Usage = llm.UsageInfo{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// Name implements llm.Provider.
func (p *Provider) Name() string {
	return "gemini"
}

// Models implements llm.Provider.
func (p *Provider) Models() []string {
	return []string{DefaultModel, "models/gemini-1.5-flash"}
}

// flattenPrompt folds the system prompt and history into one text
// prompt, labelling each turn.
func flattenPrompt(req llm.CompletionRequest) string {
	var sb strings.Builder
	if req.SystemPrompt != "" {
		sb.WriteString(req.SystemPrompt)
		sb.WriteString("\n\n")
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case "user":
			sb.WriteString("User: ")
		case "assistant":
			sb.WriteString("Assistant: ")
		case "tool":
			sb.WriteString("Tool result: ")
		default:
			sb.WriteString(msg.Role)
			sb.WriteString(": ")
		}
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("Assistant:")
	return sb.String()
}

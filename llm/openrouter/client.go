package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"goodfoods/llm"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
}

// NewClientWithBaseURL targets a non-default endpoint, e.g. a proxy or
// a test server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

// (OpenAI-compatible)
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream"`
	Tools       []toolDef     `json:"tools,omitempty"`
}

// chatMessage is OpenAI-compatible: assistant may have tool_calls; tool
// result has role "tool" and tool_call_id.
type chatMessage struct {
	Role       string      `json:"role"`
	Content    interface{} `json:"content"`
	ToolCalls  []toolCall  `json:"tool_calls,omitempty"`
	ToolCallID string      `json:"tool_call_id,omitempty"`
}

type toolDef struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  interface{} `json:"parameters"`
}

type chatResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Index        int     `json:"index"`
	Message      message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []toolCall `json:"tool_calls,omitempty"`
}

type toolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function toolCallFunction `json:"function"`
}

type toolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// createRequest builds HTTP request with auth
func (c *Client) createRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return req, nil
}

// convertMessages converts neutral messages to OpenRouter format
func convertMessages(messages []llm.Message) []chatMessage {
	result := make([]chatMessage, 0, len(messages))

	for _, msg := range messages {
		m := chatMessage{Role: msg.Role, Content: msg.Content}
		if msg.ToolCallID != "" {
			m.ToolCallID = msg.ToolCallID
		}
		for _, tc := range msg.ToolCalls {
			argsStr := "{}"
			if tc.Arguments != nil {
				if j, err := json.Marshal(tc.Arguments); err == nil {
					argsStr = string(j)
				}
			}
			m.ToolCalls = append(m.ToolCalls, toolCall{
				ID:   tc.ID,
				Type: "function",
				Function: toolCallFunction{
					Name:      tc.Name,
					Arguments: argsStr,
				},
			})
		}
		result = append(result, m)
	}

	return result
}

// convertTools converts neutral tools to OpenRouter format
func convertTools(tools []llm.Tool) []toolDef {
	result := make([]toolDef, 0, len(tools))

	for _, t := range tools {
		result = append(result, toolDef{
			Type: "function",
			Function: toolFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	return result
}

// Complete sends a non-streaming chat completion request.
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest, model string) (*llm.CompletionResponse, error) {
	chatReq := chatRequest{
		Model:       model,
		Messages:    convertMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      false,
		Tools:       convertTools(req.Tools),
	}

	// Add system prompt as first message if present
	if req.SystemPrompt != "" {
		chatReq.Messages = append([]chatMessage{
			{Role: "system", Content: req.SystemPrompt},
		}, chatReq.Messages...)
	}

	httpReq, err := c.createRequest(ctx, "POST", "/chat/completions", chatReq)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	bodyBytes, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	text := ""
	finishReason := ""
	var toolCalls []llm.ToolCall

	if len(chatResp.Choices) > 0 {
		choice := chatResp.Choices[0]
		text = choice.Message.Content
		finishReason = choice.FinishReason

		if len(choice.Message.ToolCalls) > 0 {
			toolCalls = make([]llm.ToolCall, 0, len(choice.Message.ToolCalls))
			for _, tc := range choice.Message.ToolCalls {
				var args map[string]interface{}
				if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
					// If parsing fails, skip this tool call
					continue
				}
				toolCalls = append(toolCalls, llm.ToolCall{
					ID:        tc.ID,
					Name:      tc.Function.Name,
					Arguments: args,
				})
			}
		}
	}

	// Some models emit the tool call as a bare JSON object in the text
	// instead of the structured tool_calls field. Recover it so callers
	// see a uniform response.
	if len(toolCalls) == 0 {
		if call, ok := parseEmbeddedToolCall(text); ok {
			toolCalls = append(toolCalls, call)
			text = ""
		}
	}

	modelUsed := chatResp.Model
	if modelUsed == "" {
		modelUsed = model
	}
	return &llm.CompletionResponse{
		Text:         text,
		ToolCalls:    toolCalls,
		FinishReason: finishReason,
		Usage: llm.UsageInfo{
			PromptTokens:     chatResp.Usage.PromptTokens,
			CompletionTokens: chatResp.Usage.CompletionTokens,
			TotalTokens:      chatResp.Usage.TotalTokens,
		},
		Model: modelUsed,
	}, nil
}

// parseEmbeddedToolCall detects a tool call serialised into the message
// body, e.g. `<|python_tag|>{"name": "search_restaurants", "parameters": {...}}`.
func parseEmbeddedToolCall(content string) (llm.ToolCall, bool) {
	if !strings.Contains(content, "{") || !strings.Contains(content, `"name":`) {
		return llm.ToolCall{}, false
	}
	cleaned := strings.TrimSpace(strings.ReplaceAll(content, "<|python_tag|>", ""))

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return llm.ToolCall{}, false
	}
	name, ok := parsed["name"].(string)
	if !ok || name == "" {
		return llm.ToolCall{}, false
	}
	args, _ := parsed["parameters"].(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}
	return llm.ToolCall{ID: "embedded_0", Name: name, Arguments: args}, true
}

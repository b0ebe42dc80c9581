package llm

// Message is one chat turn in provider-neutral form.
type Message struct {
	Role       string     // "user", "assistant", "tool"
	Content    string     // text, or tool result JSON for role "tool"
	ToolCalls  []ToolCall // set on assistant turns that invoked tools
	ToolCallID string     // set on tool result turns
}

// ToolCall is a structured tool invocation reported by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]interface{}
}

// Tool describes a callable function offered to the model.
type Tool struct {
	Name        string
	Description string
	Parameters  interface{}
}

// CompletionRequest contains all parameters for an LLM completion.
type CompletionRequest struct {
	Messages     []Message
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
	Tools        []Tool
}

// CompletionResponse represents a completed LLM response.
type CompletionResponse struct {
	Text         string
	ToolCalls    []ToolCall
	FinishReason string
	Usage        UsageInfo
	// Model is the model identifier that served this completion.
	// Empty if the provider does not report it.
	Model string
}

// UsageInfo tracks token usage.
type UsageInfo struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

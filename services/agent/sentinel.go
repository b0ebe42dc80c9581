// File: services/agent/sentinel.go
package agent

import (
	"encoding/json"
	"strings"

	"goodfoods/llm"
)

// ToolInvocation is a parsed request from the executor to run a tool.
type ToolInvocation struct {
	Name string
	Args map[string]interface{}
}

// Outcome is what one executor completion amounts to: either a plain
// reply to show the user, or a tool to run. Exactly one side is set.
type Outcome struct {
	Reply string
	Tool  *ToolInvocation
}

// DetectToolCall parses the sentinel form
//
//	TOOL: tool_name
//	ARGS: { ... }
//
// from executor text. Anything malformed returns nil and the text is
// treated as a plain reply; the model gets another chance next turn
// rather than surfacing a parse error to the user.
func DetectToolCall(text string) *ToolInvocation {
	toolIdx := strings.Index(text, "TOOL:")
	if toolIdx < 0 {
		return nil
	}
	rest := text[toolIdx+len("TOOL:"):]
	name := rest
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		name = rest[:nl]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	argsIdx := strings.Index(text, "ARGS:")
	if argsIdx < 0 {
		return nil
	}
	argsJSON := strings.TrimSpace(text[argsIdx+len("ARGS:"):])

	var args map[string]interface{}
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return nil
	}
	return &ToolInvocation{Name: name, Args: args}
}

// outcomeFrom inspects a completion for a tool request. Structured
// tool calls from the provider win; the sentinel text form is the
// fallback for models that ignore the tools channel.
func outcomeFrom(resp *llm.CompletionResponse) Outcome {
	if len(resp.ToolCalls) > 0 {
		tc := resp.ToolCalls[0]
		args := tc.Arguments
		if args == nil {
			args = map[string]interface{}{}
		}
		return Outcome{Tool: &ToolInvocation{Name: tc.Name, Args: args}}
	}
	if inv := DetectToolCall(resp.Text); inv != nil {
		return Outcome{Tool: inv}
	}
	return Outcome{Reply: resp.Text}
}

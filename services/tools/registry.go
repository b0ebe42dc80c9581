// File: services/tools/registry.go
package tools

import "context"

// Tool is a deterministic function the agent can invoke. Execute
// returns a JSON-marshallable payload; domain refusals (no seats, no
// such restaurant) are encoded in the payload, not the error.
type Tool interface {
	Name() string
	Description() string
	Parameters() ToolParameters
	Execute(ctx context.Context, args map[string]interface{}) (interface{}, error)
}

// ToolParameters is a JSON Schema fragment describing a tool's arguments.
type ToolParameters struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Enum        []string `json:"enum,omitempty"`
}

type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// ListTools returns list of registered tool names
func (r *Registry) ListTools() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

func (r *Registry) All() []Tool {
	toolList := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		toolList = append(toolList, tool)
	}
	return toolList
}

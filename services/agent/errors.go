package agent

import "fmt"

type AgentError struct {
	Code    string
	Message string
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAgentError(msg string) error {
	return &AgentError{
		Code:    "agentError",
		Message: msg,
	}
}

package models

import "time"

// ChatRequest is the payload coming from the frontend into
// /api/chat/sessions/:id/messages.
type ChatRequest struct {
	Message string `json:"message"` // user's message (typed or voice→text)
}

// AgentReply is the agent's answer for one user turn.
type AgentReply struct {
	Reply     string   `json:"reply"`                // natural-language reply, may contain markdown
	Intent    string   `json:"intent"`               // planner classification for this turn
	UsedTools []string `json:"used_tools,omitempty"` // tools executed while answering
}

// ChatResponse is what the message handler returns to the frontend.
type ChatResponse struct {
	SessionID string   `json:"session_id"`
	Reply     string   `json:"reply"`
	Intent    string   `json:"intent"`
	UsedTools []string `json:"used_tools,omitempty"`
}

// SessionCreatedResponse is returned when a new chat session is opened.
type SessionCreatedResponse struct {
	SessionID string `json:"session_id"`
	Greeting  string `json:"greeting"`
}

// SessionView is the transcript view returned by the session fetch endpoint.
type SessionView struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Turns     []Turn    `json:"turns"`
}

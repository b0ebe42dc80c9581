// File: services/agent/interface.go
package agent

import (
	"context"
	"time"

	"goodfoods/llm"
	"goodfoods/models"
	"goodfoods/services/session"
	"goodfoods/services/tools"
)

// AgentService drives the planner-executor loop over stored sessions.
type AgentService interface {
	StartSession(ctx context.Context) (*models.Session, error)
	HandleMessage(ctx context.Context, sessionID, message string) (*models.AgentReply, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	EndSession(ctx context.Context, sessionID string) error
}

// DefaultAgentService implements AgentService.
type DefaultAgentService struct {
	Provider llm.Provider
	Registry *tools.Registry
	Sessions session.Store

	// HistoryTurns caps the planner's conversation snapshot. Zero means
	// the default of 20.
	HistoryTurns int

	// Now is overridable so tests can pin the system prompt date.
	Now func() time.Time
}

func NewDefaultAgentService(provider llm.Provider, registry *tools.Registry, sessions session.Store) *DefaultAgentService {
	return &DefaultAgentService{
		Provider: provider,
		Registry: registry,
		Sessions: sessions,
		Now:      time.Now,
	}
}

const defaultHistoryTurns = 20

func (s *DefaultAgentService) maxHistoryTurns() int {
	if s.HistoryTurns > 0 {
		return s.HistoryTurns
	}
	return defaultHistoryTurns
}

func (s *DefaultAgentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

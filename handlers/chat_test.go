// File: handlers/chat_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodfoods/models"
	"goodfoods/services/agent"
	"goodfoods/services/session"
)

// stubAgent scripts the agent service behind the chat handlers.
type stubAgent struct {
	StartSessionFunc  func(ctx context.Context) (*models.Session, error)
	HandleMessageFunc func(ctx context.Context, sessionID, message string) (*models.AgentReply, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*models.Session, error)
	EndSessionFunc    func(ctx context.Context, sessionID string) error
}

func (s *stubAgent) StartSession(ctx context.Context) (*models.Session, error) {
	if s.StartSessionFunc != nil {
		return s.StartSessionFunc(ctx)
	}
	return &models.Session{ID: "sess-1", Turns: []models.Turn{}}, nil
}

func (s *stubAgent) HandleMessage(ctx context.Context, sessionID, message string) (*models.AgentReply, error) {
	if s.HandleMessageFunc != nil {
		return s.HandleMessageFunc(ctx, sessionID, message)
	}
	return &models.AgentReply{Reply: "ok", Intent: models.IntentOther}, nil
}

func (s *stubAgent) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if s.GetSessionFunc != nil {
		return s.GetSessionFunc(ctx, sessionID)
	}
	return &models.Session{ID: sessionID, Turns: []models.Turn{}}, nil
}

func (s *stubAgent) EndSession(ctx context.Context, sessionID string) error {
	if s.EndSessionFunc != nil {
		return s.EndSessionFunc(ctx, sessionID)
	}
	return nil
}

func newTestRouter(svc agent.AgentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(svc)
	r.POST("/api/chat/sessions", h.CreateSession)
	r.POST("/api/chat/sessions/:sessionID/messages", h.PostMessage)
	r.GET("/api/chat/sessions/:sessionID", h.GetSession)
	r.DELETE("/api/chat/sessions/:sessionID", h.DeleteSession)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestCreateSession_ReturnsGreeting verifies a new session responds 201
// with its id and the standing greeting.
func TestCreateSession_ReturnsGreeting(t *testing.T) {
	router := newTestRouter(&stubAgent{})

	w := doRequest(router, http.MethodPost, "/api/chat/sessions", "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.SessionCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, agent.Greeting, resp.Greeting)
}

// TestCreateSession_StoreFailure verifies store errors become a 500.
func TestCreateSession_StoreFailure(t *testing.T) {
	router := newTestRouter(&stubAgent{
		StartSessionFunc: func(ctx context.Context) (*models.Session, error) {
			return nil, errors.New("redis down")
		},
	})

	w := doRequest(router, http.MethodPost, "/api/chat/sessions", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// TestPostMessage_ReturnsReply verifies a successful turn echoes the
// agent's reply, intent and tools.
func TestPostMessage_ReturnsReply(t *testing.T) {
	router := newTestRouter(&stubAgent{
		HandleMessageFunc: func(ctx context.Context, sessionID, message string) (*models.AgentReply, error) {
			assert.Equal(t, "sess-1", sessionID)
			assert.Equal(t, "find me dinner", message)
			return &models.AgentReply{Reply: "I found 3 restaurants for you", Intent: models.IntentSearch, UsedTools: []string{"search_restaurants"}}, nil
		},
	})

	w := doRequest(router, http.MethodPost, "/api/chat/sessions/sess-1/messages", `{"message": "find me dinner"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, "I found 3 restaurants for you", resp.Reply)
	assert.Equal(t, models.IntentSearch, resp.Intent)
	assert.Equal(t, []string{"search_restaurants"}, resp.UsedTools)
}

// TestPostMessage_RejectsEmptyMessage verifies blank and malformed
// bodies are rejected with 400.
func TestPostMessage_RejectsEmptyMessage(t *testing.T) {
	router := newTestRouter(&stubAgent{})

	w := doRequest(router, http.MethodPost, "/api/chat/sessions/sess-1/messages", `{"message": "   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message is required")

	w = doRequest(router, http.MethodPost, "/api/chat/sessions/sess-1/messages", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid input")
}

// TestPostMessage_UnknownSession verifies a missing session maps to 404.
func TestPostMessage_UnknownSession(t *testing.T) {
	router := newTestRouter(&stubAgent{
		HandleMessageFunc: func(ctx context.Context, sessionID, message string) (*models.AgentReply, error) {
			return nil, session.ErrSessionNotFound
		},
	})

	w := doRequest(router, http.MethodPost, "/api/chat/sessions/gone/messages", `{"message": "hello"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}

// TestPostMessage_AgentFailure verifies other agent errors map to 500.
func TestPostMessage_AgentFailure(t *testing.T) {
	router := newTestRouter(&stubAgent{
		HandleMessageFunc: func(ctx context.Context, sessionID, message string) (*models.AgentReply, error) {
			return nil, errors.New("store write failed")
		},
	})

	w := doRequest(router, http.MethodPost, "/api/chat/sessions/sess-1/messages", `{"message": "hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// TestGetSession_ReturnsTranscript verifies the transcript view.
func TestGetSession_ReturnsTranscript(t *testing.T) {
	created := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	router := newTestRouter(&stubAgent{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*models.Session, error) {
			return &models.Session{
				ID:        sessionID,
				CreatedAt: created,
				UpdatedAt: created,
				Turns: []models.Turn{
					{Role: models.RoleAssistant, Content: agent.Greeting},
					{Role: models.RoleUser, Content: "hi"},
				},
			}, nil
		},
	})

	w := doRequest(router, http.MethodGet, "/api/chat/sessions/sess-1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	require.Len(t, resp.Turns, 2)
	assert.Equal(t, models.RoleUser, resp.Turns[1].Role)
}

// TestGetSession_NotFound verifies unknown ids map to 404.
func TestGetSession_NotFound(t *testing.T) {
	router := newTestRouter(&stubAgent{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*models.Session, error) {
			return nil, session.ErrSessionNotFound
		},
	})

	w := doRequest(router, http.MethodGet, "/api/chat/sessions/gone", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestDeleteSession verifies deletion acknowledges the id.
func TestDeleteSession(t *testing.T) {
	deleted := ""
	router := newTestRouter(&stubAgent{
		EndSessionFunc: func(ctx context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	})

	w := doRequest(router, http.MethodDelete, "/api/chat/sessions/sess-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sess-1", deleted)
	assert.Contains(t, w.Body.String(), `"deleted":"sess-1"`)
}

// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goodfoods/models"
	"goodfoods/services/agent"
	"goodfoods/services/session"
	"goodfoods/utils"
)

// ChatHandler exposes the conversational agent over HTTP.
type ChatHandler struct {
	Agent agent.AgentService
}

func NewChatHandler(agentSvc agent.AgentService) *ChatHandler {
	return &ChatHandler{Agent: agentSvc}
}

// CreateSession opens a new chat session and returns its greeting.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	logger := utils.GetLogger()

	sess, err := h.Agent.StartSession(c.Request.Context())
	if err != nil {
		logger.Error("Failed to start chat session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	c.JSON(http.StatusCreated, models.SessionCreatedResponse{
		SessionID: sess.ID,
		Greeting:  agent.Greeting,
	})
}

// PostMessage runs one agent turn for the session.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.Agent.HandleMessage(c.Request.Context(), sessionID, req.Message)
	if errors.Is(err, session.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		logger.Error("Agent turn failed", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		SessionID: sessionID,
		Reply:     reply.Reply,
		Intent:    reply.Intent,
		UsedTools: reply.UsedTools,
	})
}

// GetSession returns the transcript for a session.
func (h *ChatHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	sess, err := h.Agent.GetSession(c.Request.Context(), sessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load session", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.SessionView{
		SessionID: sess.ID,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
		Turns:     sess.Turns,
	})
}

// DeleteSession discards a session and its transcript.
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	if err := h.Agent.EndSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": sessionID})
}

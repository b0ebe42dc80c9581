// File: services/session/interface.go
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"goodfoods/models"
)

// ErrSessionNotFound is returned when the id has no stored session.
var ErrSessionNotFound = errors.New("session not found")

// Store persists chat sessions between turns.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, id string) error
}

// NewSession builds an empty session with a fresh id.
func NewSession() *models.Session {
	now := time.Now().UTC()
	return &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Turns:     []models.Turn{},
	}
}

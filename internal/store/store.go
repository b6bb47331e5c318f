package store

import (
	"context"
	"errors"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

// ErrNotFound is returned when no session is stored under a room code
var ErrNotFound = errors.New("session not found")

// SessionStore is the persistence collaborator: whole-session reads and
// writes keyed by room code, atomic per call. No transactional multi-row
// guarantee is offered or needed.
type SessionStore interface {
	Get(ctx context.Context, code string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, code string) error
	Exists(ctx context.Context, code string) (bool, error)
}

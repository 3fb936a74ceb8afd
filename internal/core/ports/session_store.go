package ports

import (
	"context"

	"github.com/abcmusic/library-web/internal/core/domain"
)

// SessionStore persists browser sessions keyed by session ID.
// Find returns domain.ErrSessionNotFound for unknown or expired IDs.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/abcmusic/library-web/internal/core/domain"
)

// RegisterInput carries the sign-up form fields.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// SessionService owns the client-side auth lifecycle: exchanging credentials
// for a backend token, persisting it under a session ID, resolving that ID
// back to an identity on each request, and tearing it all down on logout.
type SessionService interface {
	// Login and Register return the minted session on success. On failure no
	// session state is created or modified.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Register(ctx context.Context, input RegisterInput) (*domain.Session, error)

	// Resolve maps a session ID to its session, revalidating against the
	// backend when needed. Any failure yields (nil, nil): "not logged in" is
	// an expected state, never an error.
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)

	// Logout discards the session unconditionally.
	Logout(ctx context.Context, sessionID string) error

	// UpdateUser refreshes the cached identity snapshot, e.g. after a
	// profile update.
	UpdateUser(ctx context.Context, sessionID string, user *domain.User) error
}

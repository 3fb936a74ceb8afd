package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/metrics"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// SessionService implements the client-side auth lifecycle over the backend
// API and a session store.
type SessionService struct {
	api    ports.MusicAPI
	store  ports.SessionStore
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionService(api ports.MusicAPI, store ports.SessionStore, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{api: api, store: store, ttl: ttl, logger: logger}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	token, user, err := s.api.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	session, err := s.mint(ctx, token, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", user.Role).Msg("user logged in")
	return session, nil
}

func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Session, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleStudent
	}

	token, user, err := s.api.Register(ctx, input.Email, input.Password, input.FullName, role)
	if err != nil {
		return nil, err
	}

	session, err := s.mint(ctx, token, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", user.Role).Msg("user registered")
	return session, nil
}

// Resolve maps a session ID to a live session. Every failure path returns
// (nil, nil): an unresolvable session means "not logged in", not an error.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		metrics.SessionResolutionsTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	session, err := s.store.Find(ctx, sessionID)
	if err != nil {
		metrics.SessionResolutionsTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	if session.Expired(time.Now().UTC()) {
		metrics.SessionResolutionsTotal.WithLabelValues("expired").Inc()
		_ = s.store.Delete(ctx, sessionID)
		return nil, nil
	}

	if session.User.ID != "" {
		metrics.SessionResolutionsTotal.WithLabelValues("hit").Inc()
		return session, nil
	}

	// Snapshot missing: revalidate the token against the backend. A failure
	// here clears the session silently.
	user, err := s.api.Me(ctx, session.Token)
	if err != nil {
		metrics.SessionResolutionsTotal.WithLabelValues("miss").Inc()
		_ = s.store.Delete(ctx, sessionID)
		return nil, nil
	}

	session.User = *user
	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist revalidated session")
	}

	metrics.SessionResolutionsTotal.WithLabelValues("revalidated").Inc()
	return session, nil
}

func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		// Logout must always succeed from the caller's perspective; the
		// cookie is cleared regardless.
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to delete session")
	}
	return nil
}

func (s *SessionService) UpdateUser(ctx context.Context, sessionID string, user *domain.User) error {
	session, err := s.store.Find(ctx, sessionID)
	if err != nil {
		return err
	}
	session.User = *user
	return s.store.Save(ctx, session)
}

func (s *SessionService) mint(ctx context.Context, token string, user *domain.User) (*domain.Session, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      *user,
		CreatedAt: now,
		ExpiresAt: tokenExpiry(token, now.Add(s.ttl)),
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// tokenExpiry reads the exp claim from the backend access token without
// verifying the signature; signature verification is the backend's job. When
// the token is not a JWT or carries no exp, the fallback applies.
func tokenExpiry(token string, fallback time.Time) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fallback
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	return exp.Time.UTC()
}

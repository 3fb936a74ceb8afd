package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
)

// ProfileService applies profile edits against the backend and keeps the
// session's identity snapshot in step with the result.
type ProfileService struct {
	api      ports.MusicAPI
	sessions ports.SessionService
	logger   zerolog.Logger
}

func NewProfileService(api ports.MusicAPI, sessions ports.SessionService, logger zerolog.Logger) *ProfileService {
	return &ProfileService{api: api, sessions: sessions, logger: logger}
}

func (s *ProfileService) Update(ctx context.Context, token, sessionID string, input ports.ProfileUpdateInput) (*domain.User, error) {
	user, err := s.api.UpdateProfile(ctx, token, input)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.UpdateUser(ctx, sessionID, user); err != nil {
		// The backend accepted the change; a stale snapshot only lasts until
		// the next revalidation.
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to refresh session snapshot")
	}

	s.logger.Info().Str("user_id", user.ID).Msg("profile updated")
	return user, nil
}

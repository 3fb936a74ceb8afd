package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
)

// LessonService drives the education screens.
type LessonService struct {
	api    ports.MusicAPI
	logger zerolog.Logger
}

func NewLessonService(api ports.MusicAPI, logger zerolog.Logger) *LessonService {
	return &LessonService{api: api, logger: logger}
}

func (s *LessonService) Browse(ctx context.Context, token string, filter ports.LessonFilter) ([]domain.Lesson, error) {
	return s.api.ListLessons(ctx, token, filter)
}

func (s *LessonService) Get(ctx context.Context, token, id string) (*domain.Lesson, error) {
	return s.api.GetLesson(ctx, token, id)
}

func (s *LessonService) MarkCompleted(ctx context.Context, token, lessonID string, score *int) error {
	if err := s.api.MarkProgress(ctx, token, lessonID, true, score); err != nil {
		return err
	}
	s.logger.Info().Str("lesson_id", lessonID).Msg("lesson marked completed")
	return nil
}

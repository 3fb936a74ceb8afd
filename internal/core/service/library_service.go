package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/metrics"
)

// LibraryService drives the sheet-music browse, detail, and upload screens.
type LibraryService struct {
	api    ports.MusicAPI
	logger zerolog.Logger
}

func NewLibraryService(api ports.MusicAPI, logger zerolog.Logger) *LibraryService {
	return &LibraryService{api: api, logger: logger}
}

func (s *LibraryService) Browse(ctx context.Context, token string, filter ports.SheetMusicFilter) ([]domain.SheetMusic, error) {
	return s.api.ListSheetMusic(ctx, token, filter)
}

func (s *LibraryService) Get(ctx context.Context, token, id string) (*domain.SheetMusic, error) {
	return s.api.GetSheetMusic(ctx, token, id)
}

// Upload runs the submission pipeline: files first, strictly PDF then audio,
// then the metadata record referencing the returned URLs. A file-upload
// failure aborts the submission before the metadata call is issued; files
// already stored by the backend are not rolled back.
func (s *LibraryService) Upload(ctx context.Context, token string, submission ports.UploadSubmission) (*domain.SheetMusic, error) {
	input := ports.CreateSheetMusicInput{
		Title:           submission.Title,
		Composer:        submission.Composer,
		Genre:           submission.Genre,
		DifficultyLevel: submission.DifficultyLevel,
		Description:     submission.Description,
		Tags:            submission.Tags,
	}

	if submission.PDF != nil {
		stored, err := s.api.UploadFile(ctx, token, *submission.PDF)
		if err != nil {
			return nil, fmt.Errorf("upload pdf: %w", err)
		}
		metrics.FilesUploadedTotal.WithLabelValues("pdf").Inc()
		input.PDFURL = stored.URL
	}

	if submission.Audio != nil {
		stored, err := s.api.UploadFile(ctx, token, *submission.Audio)
		if err != nil {
			return nil, fmt.Errorf("upload audio: %w", err)
		}
		metrics.FilesUploadedTotal.WithLabelValues("audio").Inc()
		input.AudioURL = stored.URL
	}

	created, err := s.api.CreateSheetMusic(ctx, token, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("sheet_id", created.ID).
		Str("title", created.Title).
		Bool("has_pdf", input.PDFURL != "").
		Bool("has_audio", input.AudioURL != "").
		Msg("sheet music uploaded")

	return created, nil
}

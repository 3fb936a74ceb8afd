package ports

import (
	"context"

	"github.com/abcmusic/library-web/internal/core/domain"
)

// UploadSubmission bundles the sheet-music metadata with the optional files
// selected in the upload form.
type UploadSubmission struct {
	Title           string
	Composer        string
	Genre           string
	DifficultyLevel string
	Description     string
	Tags            []string
	PDF             *UploadFileInput
	Audio           *UploadFileInput
}

// LibraryService drives the sheet-music screens.
type LibraryService interface {
	Browse(ctx context.Context, token string, filter SheetMusicFilter) ([]domain.SheetMusic, error)
	Get(ctx context.Context, token, id string) (*domain.SheetMusic, error)

	// Upload runs the submission pipeline: PDF upload, then audio upload,
	// then the metadata record referencing the returned URLs. A failed file
	// upload aborts before the metadata call; files already uploaded are not
	// rolled back.
	Upload(ctx context.Context, token string, submission UploadSubmission) (*domain.SheetMusic, error)
}

// LessonService drives the education screens.
type LessonService interface {
	Browse(ctx context.Context, token string, filter LessonFilter) ([]domain.Lesson, error)
	Get(ctx context.Context, token, id string) (*domain.Lesson, error)
	MarkCompleted(ctx context.Context, token, lessonID string, score *int) error
}

// DashboardService fetches the server-computed dashboard summary.
type DashboardService interface {
	Summary(ctx context.Context, token string) (*domain.DashboardSummary, error)
}

// ProfileService applies profile edits and returns the updated identity.
type ProfileService interface {
	Update(ctx context.Context, token, sessionID string, input ProfileUpdateInput) (*domain.User, error)
}

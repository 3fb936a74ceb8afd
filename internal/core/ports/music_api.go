package ports

import (
	"context"
	"io"

	"github.com/abcmusic/library-web/internal/core/domain"
)

// SheetMusicFilter carries the library browse filters. Empty fields are
// omitted from the outgoing query string.
type SheetMusicFilter struct {
	Search     string
	Genre      string
	Difficulty string
}

// LessonFilter carries the education browse filters.
type LessonFilter struct {
	Category   string
	Difficulty string
}

// CreateSheetMusicInput is the metadata record submitted after file uploads.
type CreateSheetMusicInput struct {
	Title           string
	Composer        string
	Genre           string
	DifficultyLevel string
	Description     string
	Tags            []string
	PDFURL          string
	AudioURL        string
}

// UploadFileInput describes a single file destined for POST /files/upload.
// FileType is the backend's coarse kind: "pdf", "audio" or "image".
type UploadFileInput struct {
	Filename    string
	ContentType string
	FileType    string
	Content     io.Reader
}

// UploadedFile is the backend's record of a stored file.
type UploadedFile struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// ProfileUpdateInput carries the editable profile fields.
type ProfileUpdateInput struct {
	FullName  string
	AvatarURL string
}

// MusicAPI is the full backend contract consumed by this frontend.
// Every method issues exactly one HTTP request; calls carrying a token send
// it as an Authorization bearer header.
type MusicAPI interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Register(ctx context.Context, email, password, fullName, role string) (string, *domain.User, error)
	Me(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, token string, input ProfileUpdateInput) (*domain.User, error)

	DashboardStats(ctx context.Context, token string) (*domain.DashboardSummary, error)

	ListSheetMusic(ctx context.Context, token string, filter SheetMusicFilter) ([]domain.SheetMusic, error)
	GetSheetMusic(ctx context.Context, token, id string) (*domain.SheetMusic, error)
	CreateSheetMusic(ctx context.Context, token string, input CreateSheetMusicInput) (*domain.SheetMusic, error)
	UploadFile(ctx context.Context, token string, input UploadFileInput) (*UploadedFile, error)

	ListLessons(ctx context.Context, token string, filter LessonFilter) ([]domain.Lesson, error)
	GetLesson(ctx context.Context, token, id string) (*domain.Lesson, error)
	MarkProgress(ctx context.Context, token, lessonID string, completed bool, score *int) error

	Ping(ctx context.Context) error
}

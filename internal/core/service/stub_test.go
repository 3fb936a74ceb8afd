package service

import (
	"context"
	"errors"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
)

// stubMusicAPI implements ports.MusicAPI with per-method hooks. Methods
// without a hook fail loudly so tests notice unexpected backend calls.
type stubMusicAPI struct {
	loginFn        func(ctx context.Context, email, password string) (string, *domain.User, error)
	registerFn     func(ctx context.Context, email, password, fullName, role string) (string, *domain.User, error)
	meFn           func(ctx context.Context, token string) (*domain.User, error)
	updateFn       func(ctx context.Context, token string, input ports.ProfileUpdateInput) (*domain.User, error)
	statsFn        func(ctx context.Context, token string) (*domain.DashboardSummary, error)
	listSheetFn    func(ctx context.Context, token string, filter ports.SheetMusicFilter) ([]domain.SheetMusic, error)
	getSheetFn     func(ctx context.Context, token, id string) (*domain.SheetMusic, error)
	createSheetFn  func(ctx context.Context, token string, input ports.CreateSheetMusicInput) (*domain.SheetMusic, error)
	uploadFn       func(ctx context.Context, token string, input ports.UploadFileInput) (*ports.UploadedFile, error)
	listLessonsFn  func(ctx context.Context, token string, filter ports.LessonFilter) ([]domain.Lesson, error)
	getLessonFn    func(ctx context.Context, token, id string) (*domain.Lesson, error)
	markProgressFn func(ctx context.Context, token, lessonID string, completed bool, score *int) error
}

var errUnexpectedCall = errors.New("unexpected backend call")

func (s *stubMusicAPI) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.loginFn == nil {
		return "", nil, errUnexpectedCall
	}
	return s.loginFn(ctx, email, password)
}

func (s *stubMusicAPI) Register(ctx context.Context, email, password, fullName, role string) (string, *domain.User, error) {
	if s.registerFn == nil {
		return "", nil, errUnexpectedCall
	}
	return s.registerFn(ctx, email, password, fullName, role)
}

func (s *stubMusicAPI) Me(ctx context.Context, token string) (*domain.User, error) {
	if s.meFn == nil {
		return nil, errUnexpectedCall
	}
	return s.meFn(ctx, token)
}

func (s *stubMusicAPI) UpdateProfile(ctx context.Context, token string, input ports.ProfileUpdateInput) (*domain.User, error) {
	if s.updateFn == nil {
		return nil, errUnexpectedCall
	}
	return s.updateFn(ctx, token, input)
}

func (s *stubMusicAPI) DashboardStats(ctx context.Context, token string) (*domain.DashboardSummary, error) {
	if s.statsFn == nil {
		return nil, errUnexpectedCall
	}
	return s.statsFn(ctx, token)
}

func (s *stubMusicAPI) ListSheetMusic(ctx context.Context, token string, filter ports.SheetMusicFilter) ([]domain.SheetMusic, error) {
	if s.listSheetFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listSheetFn(ctx, token, filter)
}

func (s *stubMusicAPI) GetSheetMusic(ctx context.Context, token, id string) (*domain.SheetMusic, error) {
	if s.getSheetFn == nil {
		return nil, errUnexpectedCall
	}
	return s.getSheetFn(ctx, token, id)
}

func (s *stubMusicAPI) CreateSheetMusic(ctx context.Context, token string, input ports.CreateSheetMusicInput) (*domain.SheetMusic, error) {
	if s.createSheetFn == nil {
		return nil, errUnexpectedCall
	}
	return s.createSheetFn(ctx, token, input)
}

func (s *stubMusicAPI) UploadFile(ctx context.Context, token string, input ports.UploadFileInput) (*ports.UploadedFile, error) {
	if s.uploadFn == nil {
		return nil, errUnexpectedCall
	}
	return s.uploadFn(ctx, token, input)
}

func (s *stubMusicAPI) ListLessons(ctx context.Context, token string, filter ports.LessonFilter) ([]domain.Lesson, error) {
	if s.listLessonsFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listLessonsFn(ctx, token, filter)
}

func (s *stubMusicAPI) GetLesson(ctx context.Context, token, id string) (*domain.Lesson, error) {
	if s.getLessonFn == nil {
		return nil, errUnexpectedCall
	}
	return s.getLessonFn(ctx, token, id)
}

func (s *stubMusicAPI) MarkProgress(ctx context.Context, token, lessonID string, completed bool, score *int) error {
	if s.markProgressFn == nil {
		return errUnexpectedCall
	}
	return s.markProgressFn(ctx, token, lessonID, completed, score)
}

func (s *stubMusicAPI) Ping(context.Context) error { return nil }

// stubStore is an in-memory ports.SessionStore with failure switches.
type stubStore struct {
	sessions  map[string]domain.Session
	saveErr   error
	deleteErr error
	saves     int
	deletes   int
}

func newStubStore() *stubStore {
	return &stubStore{sessions: map[string]domain.Session{}}
}

func (s *stubStore) Save(_ context.Context, session *domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.sessions[session.ID] = *session
	return nil
}

func (s *stubStore) Find(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	out := session
	return &out, nil
}

func (s *stubStore) Delete(_ context.Context, id string) error {
	s.deletes++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, id)
	return nil
}

package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/web/view"
)

// newEcho builds an Echo instance with the real renderer and validator so
// handler tests exercise the actual templates.
func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer
	e.Validator = NewValidator()
	return e
}

// newContext prepares a request context, optionally authenticated. The session
// is stored under the same context key the session middleware uses.
func newContext(t *testing.T, e *echo.Echo, req *http.Request, session *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		c.Set("session", session)
	}
	return c, rec
}

func testSession(role string) *domain.Session {
	return &domain.Session{
		ID:    "s1",
		Token: "t1",
		User: domain.User{
			ID:       "u1",
			Email:    "ada@example.com",
			FullName: "Ada Chen",
			Role:     role,
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	data, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

type stubSessionService struct {
	loginFn    func(ctx context.Context, email, password string) (*domain.Session, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.Session, error)
	logoutFn   func(ctx context.Context, sessionID string) error
}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Session, error) {
	return s.registerFn(ctx, input)
}

func (s *stubSessionService) Resolve(context.Context, string) (*domain.Session, error) {
	return nil, nil
}

func (s *stubSessionService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubSessionService) UpdateUser(context.Context, string, *domain.User) error {
	return nil
}

type stubLibrary struct {
	browseFn func(ctx context.Context, token string, filter ports.SheetMusicFilter) ([]domain.SheetMusic, error)
	getFn    func(ctx context.Context, token, id string) (*domain.SheetMusic, error)
	uploadFn func(ctx context.Context, token string, submission ports.UploadSubmission) (*domain.SheetMusic, error)
}

func (s *stubLibrary) Browse(ctx context.Context, token string, filter ports.SheetMusicFilter) ([]domain.SheetMusic, error) {
	return s.browseFn(ctx, token, filter)
}

func (s *stubLibrary) Get(ctx context.Context, token, id string) (*domain.SheetMusic, error) {
	return s.getFn(ctx, token, id)
}

func (s *stubLibrary) Upload(ctx context.Context, token string, submission ports.UploadSubmission) (*domain.SheetMusic, error) {
	return s.uploadFn(ctx, token, submission)
}

type stubDashboard struct {
	summaryFn func(ctx context.Context, token string) (*domain.DashboardSummary, error)
}

func (s *stubDashboard) Summary(ctx context.Context, token string) (*domain.DashboardSummary, error) {
	return s.summaryFn(ctx, token)
}

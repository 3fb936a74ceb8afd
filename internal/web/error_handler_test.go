package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/web/view"
)

func errorContext(t *testing.T, path, accept string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e := echo.New()
	e.Renderer = renderer

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorHandler_DomainSentinelMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "page not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"stale token", domain.ErrInvalidCredentials, http.StatusUnauthorized, "please sign in again"},
		{"backend down", domain.ErrBackendUnavailable, http.StatusBadGateway, "temporarily unavailable"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := errorContext(t, "/library/x", "")
			handler(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.msg) {
				t.Fatalf("expected message %q in body:\n%s", tt.msg, rec.Body.String())
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorHidesCause(t *testing.T) {
	c, rec := errorContext(t, "/dashboard", "")
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("redis: connection refused"), c)

	if strings.Contains(rec.Body.String(), "redis") {
		t.Fatalf("internal cause leaked:\n%s", rec.Body.String())
	}
}

func TestErrorHandler_EchoErrorPassthrough(t *testing.T) {
	c, rec := errorContext(t, "/nope", "")
	NewHTTPErrorHandler(zerolog.Nop())(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestErrorHandler_OperationalEndpointsGetJSON(t *testing.T) {
	c, rec := errorContext(t, "/health/ready", "")
	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrBackendUnavailable, c)

	if ct := rec.Header().Get(echo.HeaderContentType); !strings.Contains(ct, echo.MIMEApplicationJSON) {
		t.Fatalf("expected JSON response, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Fatalf("expected error envelope:\n%s", rec.Body.String())
	}
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	c, rec := errorContext(t, "/dashboard", "")
	_ = c.NoContent(http.StatusOK)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)
	if rec.Code != http.StatusOK {
		t.Fatalf("committed response must not change, got %d", rec.Code)
	}
}

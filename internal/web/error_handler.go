package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/abcmusic/library-web/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the user.
//   - Renders the error page for browser requests and a JSON envelope for
//     the operational endpoints.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		if wantsJSON(c) {
			_ = c.JSON(code, map[string]string{"error": msg})
			return
		}

		if renderErr := c.Render(code, "error", echo.Map{
			"User":    nil,
			"Flash":   nil,
			"Status":  code,
			"Message": msg,
		}); renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "page not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "please sign in again"
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway, "the service is temporarily unavailable"
	}

	// Unexpected error: log the real cause, show a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func wantsJSON(c echo.Context) bool {
	path := c.Request().URL.Path
	if strings.HasPrefix(path, "/health") || path == "/metrics" {
		return true
	}
	return strings.Contains(c.Request().Header.Get("Accept"), echo.MIMEApplicationJSON)
}

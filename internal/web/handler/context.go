package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/web/cookie"
	"github.com/abcmusic/library-web/internal/web/middleware"
)

// pageData assembles the template payload common to every view: the resolved
// identity (nil on auth pages) and any pending flash, merged with the
// page-specific keys.
func pageData(c echo.Context, data echo.Map) echo.Map {
	if data == nil {
		data = echo.Map{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = middleware.CurrentUser(c)
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = cookie.PopFlash(c)
	}
	return data
}

// currentToken extracts the backend access token from the resolved session.
// Guarded routes always have one; an empty value fails the backend call
// with a 401 the normal way.
func currentToken(c echo.Context) string {
	if session := middleware.CurrentSession(c); session != nil {
		return session.Token
	}
	return ""
}

// flashError renders the named template with a transient error notification
// carrying the backend-provided message when present.
func flashError(c echo.Context, template string, err error, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Flash"] = &cookie.Flash{Kind: "error", Message: domain.UserMessage(err)}
	return c.Render(http.StatusOK, template, pageData(c, data))
}

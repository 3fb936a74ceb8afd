package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireAuth gates protected views: a pure function of the session state
// resolved by the Session middleware. An identity admits the request; its
// absence redirects to the login view, preserving the intended destination.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) != nil {
				return next(c)
			}

			target := "/login"
			if path := c.Request().URL.Path; path != "" && path != "/" {
				target += "?next=" + url.QueryEscape(path)
			}
			return c.Redirect(http.StatusSeeOther, target)
		}
	}
}

// RequireRole additionally restricts a view to the given roles.
// Must run after RequireAuth.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// SafeNextPath validates a ?next= redirect target: it must be a local
// absolute path, never a protocol-relative or external URL.
func SafeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

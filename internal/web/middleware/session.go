package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/web/cookie"
)

const sessionKey = "session"

// Session resolves the sealed session cookie to an identity on every request
// and stores the result in the Echo context. A cookie that cannot be resolved
// is cleared; the request proceeds as logged-out.
func Session(sessions ports.SessionService, codec *cookie.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := cookie.ReadSession(c, codec)

			session, err := sessions.Resolve(c.Request().Context(), sessionID)
			if err != nil {
				return err
			}
			if session == nil && sessionID != "" {
				cookie.ClearSession(c)
			}

			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

// CurrentSession returns the resolved session, or nil when logged out.
func CurrentSession(c echo.Context) *domain.Session {
	session, _ := c.Get(sessionKey).(*domain.Session)
	return session
}

// CurrentUser returns the resolved identity, or nil when logged out.
func CurrentUser(c echo.Context) *domain.User {
	if session := CurrentSession(c); session != nil {
		return &session.User
	}
	return nil
}

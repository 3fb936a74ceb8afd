package domain

import "time"

// Session binds a browser to a backend access token and a cached identity
// snapshot. The token is opaque to this layer beyond its expiry claim; the
// snapshot exists so views can render without a round trip to /auth/me.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

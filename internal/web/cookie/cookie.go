// Package cookie owns the browser-facing state of the frontend: the sealed
// session cookie and the one-shot flash cookie used for transient
// notifications across redirects.
package cookie

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	SessionCookie = "abcmusic_session"
	flashCookie   = "abcmusic_flash"

	nonceSize = 24
)

var ErrInvalidSeal = errors.New("invalid sealed value")

// Codec seals and opens cookie values with nacl/secretbox so the session ID
// never reaches the browser in the clear. The key is derived from the
// configured secret.
type Codec struct {
	key [32]byte
}

func NewCodec(secret string) *Codec {
	return &Codec{key: sha256.Sum256([]byte(secret))}
}

// Seal encrypts value into a base64 cookie-safe string. The random nonce is
// prepended to the box.
func (c *Codec) Seal(value string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(value), &nonce, &c.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open decrypts a sealed string. Tampered or truncated input yields
// ErrInvalidSeal; callers treat that the same as an absent cookie.
func (c *Codec) Open(sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) <= nonceSize {
		return "", ErrInvalidSeal
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	value, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return "", ErrInvalidSeal
	}
	return string(value), nil
}

// SetSession writes the sealed session cookie.
func SetSession(c echo.Context, codec *Codec, sessionID string, ttl time.Duration, secure bool) error {
	sealed, err := codec.Seal(sessionID)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    sealed,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ReadSession returns the session ID from the request cookie, or "" when the
// cookie is absent or fails to open.
func ReadSession(c echo.Context, codec *Codec) string {
	raw, err := c.Cookie(SessionCookie)
	if err != nil || raw.Value == "" {
		return ""
	}
	id, err := codec.Open(raw.Value)
	if err != nil {
		return ""
	}
	return id
}

// ClearSession expires the session cookie.
func ClearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

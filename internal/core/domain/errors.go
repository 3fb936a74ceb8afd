package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrSessionNotFound = errors.New("session not found")
var ErrForbidden = errors.New("access forbidden")
var ErrNotFound = errors.New("record not found")
var ErrBackendUnavailable = errors.New("backend unavailable")

// UserFacing is implemented by errors that carry a message safe to show in a
// notification, such as the backend's error envelope.
type UserFacing interface {
	UserMessage() string
}

// UserMessage converts any error into notification text: the backend-provided
// message when present, else a generic fallback.
func UserMessage(err error) string {
	var uf UserFacing
	if errors.As(err, &uf) {
		return uf.UserMessage()
	}
	if errors.Is(err, ErrBackendUnavailable) {
		return "The service is temporarily unavailable. Please try again."
	}
	return "Something went wrong. Please try again."
}

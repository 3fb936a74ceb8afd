package domain

import "time"

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User is the authenticated identity as returned by the backend.
// The frontend holds no users of record; this is a per-session snapshot.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// CanPublish reports whether the user may upload sheet music.
// The backend enforces this as well; the frontend uses it only to gate navigation.
func (u *User) CanPublish() bool {
	if u == nil {
		return false
	}
	return u.Role == RoleTeacher || u.Role == RoleAdmin
}

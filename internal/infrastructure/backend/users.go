package backend

import (
	"context"
	"net/http"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
)

// profileUpdateRequest omits empty fields so the backend only touches what
// the form actually changed.
type profileUpdateRequest struct {
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// UpdateProfile applies the editable profile fields and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, token string, input ports.ProfileUpdateInput) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, "update_profile", http.MethodPut, "/users/profile", token, nil,
		profileUpdateRequest{FullName: input.FullName, AvatarURL: input.AvatarURL}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

package backend

import (
	"context"
	"net/http"

	"github.com/abcmusic/library-web/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// tokenResponse is the backend's auth envelope for login and register.
type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        domain.User `json:"user"`
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	var resp tokenResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", nil,
		loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.AccessToken, &resp.User, nil
}

// Register creates an account and returns its first access token.
func (c *Client) Register(ctx context.Context, email, password, fullName, role string) (string, *domain.User, error) {
	var resp tokenResponse
	err := c.do(ctx, "register", http.MethodPost, "/auth/register", "", nil,
		registerRequest{Email: email, Password: password, FullName: fullName, Role: role}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.AccessToken, &resp.User, nil
}

// Me resolves a token to its identity.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, "me", http.MethodGet, "/auth/me", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

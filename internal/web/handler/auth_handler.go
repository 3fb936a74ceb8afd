package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/web/cookie"
	"github.com/abcmusic/library-web/internal/web/middleware"
)

// AuthHandler serves the login and registration screens and owns the session
// cookie lifecycle.
type AuthHandler struct {
	sessions      ports.SessionService
	codec         *cookie.Codec
	cookieTTL     time.Duration
	secureCookies bool
}

func NewAuthHandler(sessions ports.SessionService, codec *cookie.Codec, cookieTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		sessions:      sessions,
		codec:         codec,
		cookieTTL:     cookieTTL,
		secureCookies: secureCookies,
	}
}

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

type registerForm struct {
	FullName string `form:"full_name" validate:"required"`
	Email    string `form:"email"     validate:"required,email"`
	Password string `form:"password"  validate:"required,min=6"`
	Role     string `form:"role"      validate:"omitempty,oneof=student teacher"`
}

// ShowLogin renders the sign-in form. Logged-in users go straight to the
// dashboard.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Render(http.StatusOK, "login", pageData(c, echo.Map{
		"Email": "",
		"Next":  middleware.SafeNextPath(c.QueryParam("next")),
	}))
}

// Login submits credentials. Success sets the session cookie and redirects;
// failure re-renders the form with the entered email and a notification.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return flashError(c, "login", err, echo.Map{"Email": "", "Next": ""})
	}
	if err := c.Validate(&form); err != nil {
		return flashError(c, "login", err, echo.Map{"Email": form.Email, "Next": form.Next})
	}

	session, err := h.sessions.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		return flashError(c, "login", err, echo.Map{"Email": form.Email, "Next": form.Next})
	}

	if err := cookie.SetSession(c, h.codec, session.ID, h.cookieTTL, h.secureCookies); err != nil {
		return err
	}

	target := middleware.SafeNextPath(form.Next)
	if target == "" {
		target = "/dashboard"
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// ShowRegister renders the sign-up form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Render(http.StatusOK, "register", pageData(c, echo.Map{
		"FullName": "",
		"Email":    "",
		"Role":     domain.RoleStudent,
	}))
}

// Register creates an account; the backend logs the new user straight in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return flashError(c, "register", err, echo.Map{"FullName": "", "Email": "", "Role": domain.RoleStudent})
	}

	retained := echo.Map{"FullName": form.FullName, "Email": form.Email, "Role": form.Role}
	if err := c.Validate(&form); err != nil {
		return flashError(c, "register", err, retained)
	}

	session, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Email:    form.Email,
		Password: form.Password,
		FullName: form.FullName,
		Role:     form.Role,
	})
	if err != nil {
		return flashError(c, "register", err, retained)
	}

	if err := cookie.SetSession(c, h.codec, session.ID, h.cookieTTL, h.secureCookies); err != nil {
		return err
	}

	cookie.SetFlash(c, "success", "Welcome to ABC Music Library!")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session and its cookie unconditionally.
func (h *AuthHandler) Logout(c echo.Context) error {
	if session := middleware.CurrentSession(c); session != nil {
		if err := h.sessions.Logout(c.Request().Context(), session.ID); err != nil {
			return err
		}
	}
	cookie.ClearSession(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

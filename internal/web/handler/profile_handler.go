package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/web/cookie"
	"github.com/abcmusic/library-web/internal/web/middleware"
)

// ProfileHandler serves the profile screen and applies edits.
type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type profileForm struct {
	FullName  string `form:"full_name"  validate:"required"`
	AvatarURL string `form:"avatar_url" validate:"omitempty,url"`
}

func (h *ProfileHandler) Show(c echo.Context) error {
	return c.Render(http.StatusOK, "profile", pageData(c, nil))
}

func (h *ProfileHandler) Update(c echo.Context) error {
	var form profileForm
	if err := c.Bind(&form); err != nil {
		return flashError(c, "profile", err, nil)
	}
	if err := c.Validate(&form); err != nil {
		return flashError(c, "profile", err, nil)
	}

	session := middleware.CurrentSession(c)
	_, err := h.profiles.Update(c.Request().Context(), session.Token, session.ID, ports.ProfileUpdateInput{
		FullName:  form.FullName,
		AvatarURL: form.AvatarURL,
	})
	if err != nil {
		return flashError(c, "profile", err, nil)
	}

	cookie.SetFlash(c, "success", "Profile updated.")
	return c.Redirect(http.StatusSeeOther, "/profile")
}

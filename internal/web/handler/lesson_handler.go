package handler

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/web/cookie"
)

// LessonHandler serves the education screens.
type LessonHandler struct {
	lessons ports.LessonService
}

func NewLessonHandler(lessons ports.LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

func (h *LessonHandler) List(c echo.Context) error {
	filter := ports.LessonFilter{
		Category:   c.QueryParam("category"),
		Difficulty: c.QueryParam("difficulty"),
	}

	data := echo.Map{
		"Filter":     filter,
		"Categories": domain.LessonCategories,
		"Tiers":      domain.Tiers,
	}

	lessons, err := h.lessons.Browse(c.Request().Context(), currentToken(c), filter)
	if err != nil {
		data["Lessons"] = []domain.Lesson{}
		return flashError(c, "lessons", err, data)
	}

	data["Lessons"] = lessons
	return c.Render(http.StatusOK, "lessons", pageData(c, data))
}

func (h *LessonHandler) Detail(c echo.Context) error {
	lesson, err := h.lessons.Get(c.Request().Context(), currentToken(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "lesson not found")
		}
		return err
	}

	return c.Render(http.StatusOK, "lesson_detail", pageData(c, echo.Map{
		"Lesson": lesson,
		// Lesson bodies are authored HTML served by the backend.
		"Content": template.HTML(lesson.Content),
	}))
}

// Complete marks the lesson done and returns to its page.
func (h *LessonHandler) Complete(c echo.Context) error {
	lessonID := c.Param("id")

	if err := h.lessons.MarkCompleted(c.Request().Context(), currentToken(c), lessonID, nil); err != nil {
		cookie.SetFlash(c, "error", domain.UserMessage(err))
	} else {
		cookie.SetFlash(c, "success", "Lesson marked as completed.")
	}

	return c.Redirect(http.StatusSeeOther, "/lessons/"+lessonID)
}

package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
)

// ListLessons browses the education catalogue with optional filters.
func (c *Client) ListLessons(ctx context.Context, token string, filter ports.LessonFilter) ([]domain.Lesson, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Difficulty != "" {
		query.Set("difficulty", filter.Difficulty)
	}

	var lessons []domain.Lesson
	if err := c.do(ctx, "list_lessons", http.MethodGet, "/lessons", token, query, nil, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (c *Client) GetLesson(ctx context.Context, token, id string) (*domain.Lesson, error) {
	var lesson domain.Lesson
	if err := c.do(ctx, "get_lesson", http.MethodGet, "/lessons/"+url.PathEscape(id), token, nil, nil, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// MarkProgress records lesson completion. The backend takes these as query
// parameters rather than a JSON body.
func (c *Client) MarkProgress(ctx context.Context, token, lessonID string, completed bool, score *int) error {
	query := url.Values{}
	query.Set("completed", strconv.FormatBool(completed))
	if score != nil {
		query.Set("score", strconv.Itoa(*score))
	}

	return c.do(ctx, "mark_progress", http.MethodPost, "/progress/"+url.PathEscape(lessonID), token, query, nil, nil)
}

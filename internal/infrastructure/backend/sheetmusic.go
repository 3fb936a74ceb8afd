package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
)

type createSheetMusicRequest struct {
	Title           string   `json:"title"`
	Composer        string   `json:"composer"`
	Genre           string   `json:"genre"`
	DifficultyLevel string   `json:"difficulty_level"`
	Description     string   `json:"description,omitempty"`
	Tags            []string `json:"tags"`
	PDFURL          string   `json:"pdf_url,omitempty"`
	AudioURL        string   `json:"audio_url,omitempty"`
}

// ListSheetMusic browses the library. The query string contains exactly the
// non-empty filter fields.
func (c *Client) ListSheetMusic(ctx context.Context, token string, filter ports.SheetMusicFilter) ([]domain.SheetMusic, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Genre != "" {
		query.Set("genre", filter.Genre)
	}
	if filter.Difficulty != "" {
		query.Set("difficulty", filter.Difficulty)
	}

	var records []domain.SheetMusic
	if err := c.do(ctx, "list_sheet_music", http.MethodGet, "/sheet-music", token, query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) GetSheetMusic(ctx context.Context, token, id string) (*domain.SheetMusic, error) {
	var record domain.SheetMusic
	if err := c.do(ctx, "get_sheet_music", http.MethodGet, "/sheet-music/"+url.PathEscape(id), token, nil, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateSheetMusic submits the metadata record. File URLs must already exist;
// UploadFile runs first in the submission pipeline.
func (c *Client) CreateSheetMusic(ctx context.Context, token string, input ports.CreateSheetMusicInput) (*domain.SheetMusic, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	var created domain.SheetMusic
	err := c.do(ctx, "create_sheet_music", http.MethodPost, "/sheet-music", token, nil,
		createSheetMusicRequest{
			Title:           input.Title,
			Composer:        input.Composer,
			Genre:           input.Genre,
			DifficultyLevel: input.DifficultyLevel,
			Description:     input.Description,
			Tags:            tags,
			PDFURL:          input.PDFURL,
			AudioURL:        input.AudioURL,
		}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

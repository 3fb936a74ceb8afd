package domain

import "time"

// Difficulty tiers shared by sheet music and lessons.
const (
	TierBeginner     = "beginner"
	TierIntermediate = "intermediate"
	TierAdvanced     = "advanced"
)

// Tiers lists the valid difficulty tiers in display order.
var Tiers = []string{TierBeginner, TierIntermediate, TierAdvanced}

// Genres are the filter options offered by the library browser. The backend
// treats genre as free text; this list only drives the dropdowns.
var Genres = []string{"classical", "jazz", "pop", "rock", "blues", "folk"}

// SheetMusic is a library record as returned by the backend.
// Read-only in this layer except for creation via the upload flow.
type SheetMusic struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Composer        string    `json:"composer"`
	Genre           string    `json:"genre"`
	DifficultyLevel string    `json:"difficulty_level"`
	Description     string    `json:"description,omitempty"`
	PDFURL          string    `json:"pdf_url,omitempty"`
	AudioURL        string    `json:"audio_url,omitempty"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
	UploadedBy      string    `json:"uploaded_by"`
	CreatedAt       time.Time `json:"created_at"`
	Tags            []string  `json:"tags"`
	IsPublished     bool      `json:"is_published"`
}

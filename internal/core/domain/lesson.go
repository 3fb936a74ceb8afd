package domain

import "time"

// LessonCategories are the filter options offered by the education browser.
var LessonCategories = []string{"theory", "harmony", "rhythm", "ear-training", "composition"}

// Lesson is an education record as returned by the backend.
type Lesson struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Content         string           `json:"content"`
	Category        string           `json:"category"`
	DifficultyLevel string           `json:"difficulty_level"`
	CreatedBy       string           `json:"created_by"`
	CreatedAt       time.Time        `json:"created_at"`
	IsPublished     bool             `json:"is_published"`
	Exercises       []map[string]any `json:"exercises"`
}

// ExerciseCount returns the number of exercises attached to the lesson.
// Only the count is displayed in this layer.
func (l *Lesson) ExerciseCount() int {
	return len(l.Exercises)
}

package domain

// DashboardStats holds the aggregate progress counters.
// Always server-computed; this layer never derives them locally.
type DashboardStats struct {
	TotalLessons       int     `json:"total_lessons"`
	CompletedLessons   int     `json:"completed_lessons"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// DashboardSummary is the full payload of GET /dashboard/stats.
type DashboardSummary struct {
	Stats            DashboardStats `json:"stats"`
	RecentSheetMusic []SheetMusic   `json:"recent_sheet_music"`
	RecentLessons    []Lesson       `json:"recent_lessons"`
}

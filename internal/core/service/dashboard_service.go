package service

import (
	"context"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
)

// DashboardService fetches the server-computed summary. The counters are used
// as-is; this layer never recomputes progress locally.
type DashboardService struct {
	api ports.MusicAPI
}

func NewDashboardService(api ports.MusicAPI) *DashboardService {
	return &DashboardService{api: api}
}

func (s *DashboardService) Summary(ctx context.Context, token string) (*domain.DashboardSummary, error) {
	return s.api.DashboardStats(ctx, token)
}

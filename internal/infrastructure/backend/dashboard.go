package backend

import (
	"context"
	"net/http"

	"github.com/abcmusic/library-web/internal/core/domain"
)

// DashboardStats fetches the server-computed summary for the current user.
func (c *Client) DashboardStats(ctx context.Context, token string) (*domain.DashboardSummary, error) {
	var summary domain.DashboardSummary
	if err := c.do(ctx, "dashboard_stats", http.MethodGet, "/dashboard/stats", token, nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

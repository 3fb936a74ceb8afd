package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
)

// DashboardHandler renders the landing screen with the server-computed
// progress summary.
type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

func (h *DashboardHandler) Show(c echo.Context) error {
	summary, err := h.dashboards.Summary(c.Request().Context(), currentToken(c))
	if err != nil {
		return flashError(c, "dashboard", err, echo.Map{"Summary": &domain.DashboardSummary{}})
	}

	return c.Render(http.StatusOK, "dashboard", pageData(c, echo.Map{
		"Summary": summary,
	}))
}

package v1

import (
	"net/http"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard counters
type DashboardHandler interface {
	Stats(ctx *gin.Context)
}

type dashboardHandler struct {
	dashboardService dashboard.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

// Stats returns submission, user and content counts
func (handler *dashboardHandler) Stats(ctx *gin.Context) {
	stats, err := handler.dashboardService.Stats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

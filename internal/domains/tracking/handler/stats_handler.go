package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ebook-backend/internal/domains/tracking/service"
	"ebook-backend/internal/shared/response"
)

type StatsHandler struct {
	trackingService service.Service
}

func NewStatsHandler(trackingService service.Service) *StatsHandler {
	return &StatsHandler{
		trackingService: trackingService,
	}
}

// GetStatistics trả về platform statistics
// GET /api/v1/stats
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	stats := h.trackingService.GetStatistics(c.Request.Context())
	response.Success(c, http.StatusOK, stats)
}

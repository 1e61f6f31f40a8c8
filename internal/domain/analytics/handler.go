package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casahub/internal/middleware"
	"casahub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Dashboard handles GET /api/v1/analytics/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// CampaignAnalytics handles GET /api/v1/analytics/campaigns/:id
func (h *Handler) CampaignAnalytics(c *gin.Context) {
	out, err := h.service.CampaignAnalytics(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// LeadAnalytics handles GET /api/v1/analytics/leads
func (h *Handler) LeadAnalytics(c *gin.Context) {
	out, err := h.service.LeadAnalytics(c.Request.Context(), middleware.CallerFrom(c), c.Query("period"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

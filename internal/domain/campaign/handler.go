package campaign

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"casahub/internal/middleware"
	"casahub/internal/pkg/apperr"
	"casahub/internal/pkg/pagination"
	"casahub/internal/pkg/response"
	"casahub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/campaigns
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Status:     c.Query("status"),
		Type:       c.Query("type"),
		PropertyID: c.Query("property"),
	}
	if v := c.Query("startAfter"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.StartAfter = &t
		}
	}
	if v := c.Query("startUntil"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.StartUntil = &t
		}
	}

	page := pagination.FromQuery(c)
	campaigns, total, err := h.service.List(c.Request.Context(), middleware.CallerFrom(c), filter, page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, campaigns, total, page.Page, page.Limit)
}

// Get handles GET /api/v1/campaigns/:id
func (h *Handler) Get(c *gin.Context) {
	campaign, err := h.service.Get(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, campaign)
}

// Create handles POST /api/v1/campaigns
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	campaign, err := h.service.Create(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, campaign, "Campaign created successfully")
}

// Update handles PUT /api/v1/campaigns/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	campaign, err := h.service.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, campaign, "Campaign updated successfully")
}

// Delete handles DELETE /api/v1/campaigns/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Campaign deleted successfully")
}

// AddKPI handles POST /api/v1/campaigns/:id/kpis
func (h *Handler) AddKPI(c *gin.Context) {
	var req AddKPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	kpi, err := h.service.AddKPI(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, kpi, "KPI added successfully")
}

// UpdateKPI handles PATCH /api/v1/campaigns/:id/kpis/:kpiId
func (h *Handler) UpdateKPI(c *gin.Context) {
	var req UpdateKPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	kpi, err := h.service.UpdateKPI(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), c.Param("kpiId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, kpi, "KPI updated successfully")
}

// DeleteKPI handles DELETE /api/v1/campaigns/:id/kpis/:kpiId
func (h *Handler) DeleteKPI(c *gin.Context) {
	if err := h.service.DeleteKPI(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), c.Param("kpiId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "KPI deleted successfully")
}

package lead

import (
	"net/http"
	"strconv"

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

// List handles GET /api/v1/leads
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Status:        c.Query("status"),
		Source:        c.Query("source"),
		AssignedAgent: c.Query("assignedAgent"),
	}
	if v := c.Query("minScore"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MinScore = &n
		}
	}
	if v := c.Query("maxScore"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MaxScore = &n
		}
	}

	page := pagination.FromQuery(c)
	leads, total, err := h.service.List(c.Request.Context(), middleware.CallerFrom(c), filter, page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, leads, total, page.Page, page.Limit)
}

// Get handles GET /api/v1/leads/:id
func (h *Handler) Get(c *gin.Context) {
	l, err := h.service.Get(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// Create handles POST /api/v1/leads
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

	l, err := h.service.Create(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, l, "Lead created successfully")
}

// Update handles PUT /api/v1/leads/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	l, err := h.service.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, l, "Lead updated successfully")
}

// Delete handles DELETE /api/v1/leads/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Lead deleted successfully")
}

// SetScore handles PUT /api/v1/leads/:id/score
func (h *Handler) SetScore(c *gin.Context) {
	var req SetScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	l, err := h.service.SetScore(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, l, "Lead score updated successfully")
}

// AddInterest handles POST /api/v1/leads/:id/properties
func (h *Handler) AddInterest(c *gin.Context) {
	var req AddInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	pi, err := h.service.AddInterest(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, pi, "Property interest added successfully")
}

// RemoveInterest handles DELETE /api/v1/leads/:id/properties/:propertyId
func (h *Handler) RemoveInterest(c *gin.Context) {
	if err := h.service.RemoveInterest(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), c.Param("propertyId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Property interest removed successfully")
}

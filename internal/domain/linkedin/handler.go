package linkedin

import (
	"net/http"

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

// List handles GET /api/v1/linkedin/posts
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Status:     c.Query("status"),
		CampaignID: c.Query("campaign"),
	}

	page := pagination.FromQuery(c)
	posts, total, err := h.service.List(c.Request.Context(), middleware.CallerFrom(c), filter, page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, posts, total, page.Page, page.Limit)
}

// Get handles GET /api/v1/linkedin/posts/:id
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Create handles POST /api/v1/linkedin/posts
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

	p, err := h.service.Create(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, p, "Post created successfully")
}

// Update handles PUT /api/v1/linkedin/posts/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, p, "Post updated successfully")
}

// Delete handles DELETE /api/v1/linkedin/posts/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Post deleted successfully")
}

// Submit handles POST /api/v1/linkedin/posts/:id/submit
func (h *Handler) Submit(c *gin.Context) {
	p, err := h.service.Submit(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, p, "Post submitted for approval")
}

// Approve handles POST /api/v1/linkedin/posts/:id/approve
func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	p, err := h.service.Approve(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), *req.Approved, req.Feedback)
	if err != nil {
		response.FromError(c, err)
		return
	}
	msg := "Post approved successfully"
	if !*req.Approved {
		msg = "Post rejected successfully"
	}
	response.SuccessWithMessage(c, http.StatusOK, p, msg)
}

// Schedule handles POST /api/v1/linkedin/posts/:id/schedule
func (h *Handler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	p, err := h.service.Schedule(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, p, "Post scheduled successfully")
}

// AddMedia handles POST /api/v1/linkedin/posts/:id/media
func (h *Handler) AddMedia(c *gin.Context) {
	var req AddMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	m, err := h.service.AddMedia(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, m, "Media added successfully")
}

// UpsertAnalytics handles PUT /api/v1/linkedin/posts/:id/analytics
func (h *Handler) UpsertAnalytics(c *gin.Context) {
	var req AnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	a, err := h.service.UpsertAnalytics(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, a, "Analytics updated successfully")
}

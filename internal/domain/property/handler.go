package property

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

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

// List handles GET /api/v1/properties
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Type:    c.Query("type"),
		Status:  c.Query("status"),
		AgentID: c.Query("agent"),
	}
	if v := c.Query("minPrice"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MinPrice = &d
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MaxPrice = &d
		}
	}
	if v := c.Query("minArea"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinArea = &f
		}
	}
	if v := c.Query("maxArea"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxArea = &f
		}
	}

	page := pagination.FromQuery(c)
	properties, total, err := h.service.List(c.Request.Context(), middleware.CallerFrom(c), filter, page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, properties, total, page.Page, page.Limit)
}

// Get handles GET /api/v1/properties/:id
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Create handles POST /api/v1/properties
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
	response.SuccessWithMessage(c, http.StatusCreated, p, "Property created successfully")
}

// Update handles PUT /api/v1/properties/:id
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
	response.SuccessWithMessage(c, http.StatusOK, p, "Property updated successfully")
}

// Delete handles DELETE /api/v1/properties/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Property deleted successfully")
}

// AddImage handles POST /api/v1/properties/:id/images
func (h *Handler) AddImage(c *gin.Context) {
	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	img, err := h.service.AddImage(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, img, "Image added successfully")
}

// UpdateImage handles PATCH /api/v1/properties/:id/images/:imageId
func (h *Handler) UpdateImage(c *gin.Context) {
	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	img, err := h.service.UpdateImage(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), c.Param("imageId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, img, "Image updated successfully")
}

// DeleteImage handles DELETE /api/v1/properties/:id/images/:imageId
func (h *Handler) DeleteImage(c *gin.Context) {
	if err := h.service.DeleteImage(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), c.Param("imageId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Image deleted successfully")
}

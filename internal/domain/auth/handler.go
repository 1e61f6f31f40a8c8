package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casahub/internal/middleware"
	"casahub/internal/pkg/access"
	"casahub/internal/pkg/apperr"
	"casahub/internal/pkg/response"
	"casahub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		// Login failures map to 401 rather than the generic 403
		if e, ok := apperr.As(err); ok && e.Code == "INVALID_CREDENTIALS" {
			response.Error(c, http.StatusUnauthorized, e.Code, e.Message)
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Me handles GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// ChangePassword handles POST /api/v1/auth/change-password
func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), middleware.CallerFrom(c), req); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Password changed")
}

// UpdateProfile handles PATCH /api/v1/auth/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, user, "Profile updated")
}

// SetRole handles PATCH /api/v1/auth/users/:id/role (admin)
func (h *Handler) SetRole(c *gin.Context) {
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperr.Validation(errs))
		return
	}

	user, err := h.service.SetRole(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), access.Role(req.Role))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, user, "Role updated")
}

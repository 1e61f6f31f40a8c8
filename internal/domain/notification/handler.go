package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"casahub/internal/middleware"
	"casahub/internal/pkg/jwt"
	"casahub/internal/pkg/response"
)

type Handler struct {
	service *Service
	hub     *Hub
	jwt     *jwt.Service
	log     *zap.Logger
}

func NewHandler(service *Service, hub *Hub, jwtService *jwt.Service, log *zap.Logger) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwtService, log: log}
}

// List handles GET /api/v1/notifications
func (h *Handler) List(c *gin.Context) {
	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	unreadOnly := c.Query("unread") == "true"

	ns, total, err := h.service.List(c.Request.Context(), middleware.CallerFrom(c), unreadOnly, limit, offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": ns, "total": total})
}

// UnreadCount handles GET /api/v1/notifications/unread-count
func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": count})
}

// MarkRead handles PATCH /api/v1/notifications/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead handles POST /api/v1/notifications/read-all
func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context(), middleware.CallerFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "All notifications marked as read")
}

// ServeWS handles GET /ws/notifications?token=...
// Browsers cannot set Authorization headers on websocket upgrades, so the
// token rides in the query string.
func (h *Handler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "MISSING_TOKEN", "Token query parameter is required")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.ServeWS(conn, claims.UserID)
}

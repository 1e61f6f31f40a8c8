package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes registers inbox routes on an authenticated group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", handler.List)
		notifications.GET("/unread-count", handler.UnreadCount)
		notifications.PATCH("/:id/read", handler.MarkRead)
		notifications.POST("/read-all", handler.MarkAllRead)
	}
}

// RegisterWS registers the websocket endpoint on the root engine; auth is
// handled inside the handler via the token query parameter.
func RegisterWS(r *gin.Engine, handler *Handler) {
	r.GET("/api/v1/ws", handler.ServeWS)
}

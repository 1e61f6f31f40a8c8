package linkedin

import (
	"github.com/gin-gonic/gin"

	"casahub/internal/middleware"
	"casahub/internal/pkg/access"
)

// RegisterRoutes registers post routes on an authenticated group. Reads are
// open to any authenticated role; writes require editor or admin. Finer
// checks (creator-only submit, admin-only analytics) live in the service,
// with the analytics route additionally gated here.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	posts := r.Group("/linkedin/posts")
	{
		posts.GET("", handler.List)
		posts.GET("/:id", handler.Get)

		write := posts.Group("", middleware.RequireRole(access.RoleEditor, access.RoleAdmin))
		{
			write.POST("", handler.Create)
			write.PUT("/:id", handler.Update)
			write.DELETE("/:id", handler.Delete)
			write.POST("/:id/submit", handler.Submit)
			write.POST("/:id/approve", handler.Approve)
			write.POST("/:id/schedule", handler.Schedule)
			write.POST("/:id/media", handler.AddMedia)
			write.PUT("/:id/analytics", middleware.AdminOnly(), handler.UpsertAnalytics)
		}
	}
}

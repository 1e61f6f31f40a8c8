package campaign

import (
	"github.com/gin-gonic/gin"

	"casahub/internal/middleware"
	"casahub/internal/pkg/access"
)

// RegisterRoutes registers campaign routes on an authenticated group. Reads
// are open to any authenticated role; writes require editor or admin.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	campaigns := r.Group("/campaigns")
	{
		campaigns.GET("", handler.List)
		campaigns.GET("/:id", handler.Get)

		write := campaigns.Group("", middleware.RequireRole(access.RoleEditor, access.RoleAdmin))
		{
			write.POST("", handler.Create)
			write.PUT("/:id", handler.Update)
			write.DELETE("/:id", handler.Delete)
			write.POST("/:id/kpis", handler.AddKPI)
			write.PATCH("/:id/kpis/:kpiId", handler.UpdateKPI)
			write.DELETE("/:id/kpis/:kpiId", handler.DeleteKPI)
		}
	}
}

package property

import (
	"github.com/gin-gonic/gin"

	"casahub/internal/middleware"
	"casahub/internal/pkg/access"
)

// RegisterRoutes registers property routes on an authenticated group. Reads
// are open to any authenticated role; writes require editor or admin.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	properties := r.Group("/properties")
	{
		properties.GET("", handler.List)
		properties.GET("/:id", handler.Get)

		write := properties.Group("", middleware.RequireRole(access.RoleEditor, access.RoleAdmin))
		{
			write.POST("", handler.Create)
			write.PUT("/:id", handler.Update)
			write.DELETE("/:id", handler.Delete)
			write.POST("/:id/images", handler.AddImage)
			write.PATCH("/:id/images/:imageId", handler.UpdateImage)
			write.DELETE("/:id/images/:imageId", handler.DeleteImage)
		}
	}
}

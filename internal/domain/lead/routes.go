package lead

import (
	"github.com/gin-gonic/gin"

	"casahub/internal/middleware"
	"casahub/internal/pkg/access"
)

// RegisterRoutes registers lead routes on an authenticated group. Reads are
// open to any authenticated role; writes require editor or admin.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.List)
		leads.GET("/:id", handler.Get)

		write := leads.Group("", middleware.RequireRole(access.RoleEditor, access.RoleAdmin))
		{
			write.POST("", handler.Create)
			write.PUT("/:id", handler.Update)
			write.DELETE("/:id", handler.Delete)
			write.PUT("/:id/score", handler.SetScore)
			write.POST("/:id/properties", handler.AddInterest)
			write.DELETE("/:id/properties/:propertyId", handler.RemoveInterest)
		}
	}
}

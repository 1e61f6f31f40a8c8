package analytics

import "github.com/gin-gonic/gin"

// RegisterRoutes registers analytics routes on an authenticated group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	analytics := r.Group("/analytics")
	{
		analytics.GET("/dashboard", handler.Dashboard)
		analytics.GET("/campaigns/:id", handler.CampaignAnalytics)
		analytics.GET("/leads", handler.LeadAnalytics)
	}
}

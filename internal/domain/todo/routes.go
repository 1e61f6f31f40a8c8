package todo

import "github.com/gin-gonic/gin"

// RegisterRoutes registers todo routes on an authenticated group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	todos := r.Group("/todos")
	{
		todos.GET("", handler.List)
		todos.POST("", handler.Create)
		todos.GET("/:id", handler.Get)
		todos.PUT("/:id", handler.Update)
		todos.DELETE("/:id", handler.Delete)
		todos.GET("/:id/comments", handler.ListComments)
		todos.POST("/:id/comments", handler.AddComment)
	}
}

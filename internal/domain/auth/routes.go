package auth

import (
	"github.com/gin-gonic/gin"

	"casahub/internal/middleware"
)

// RegisterPublicRoutes registers unauthenticated auth routes.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
	}
}

// RegisterProtectedRoutes registers routes that require a valid token.
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/me", handler.Me)
		authGroup.POST("/change-password", handler.ChangePassword)
		authGroup.PATCH("/profile", handler.UpdateProfile)
		authGroup.PATCH("/users/:id/role", middleware.AdminOnly(), handler.SetRole)
	}
}

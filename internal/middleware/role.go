package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/response"
)

// RequireRole ensures the authenticated caller has one of the given roles.
func RequireRole(roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		for _, r := range roles {
			if caller.Role == r {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(access.RoleAdmin)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/jwt"
	"casahub/internal/pkg/response"
)

const callerKey = "caller"

// Auth validates the bearer token and stores the caller identity in the
// request context.
func Auth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(callerKey, access.Caller{ID: claims.UserID, Role: access.Role(claims.Role)})
		c.Next()
	}
}

// CallerFrom returns the authenticated caller stored by Auth.
func CallerFrom(c *gin.Context) access.Caller {
	v, ok := c.Get(callerKey)
	if !ok {
		return access.Caller{}
	}
	caller, _ := v.(access.Caller)
	return caller
}

package middleware

import (
	"net/http"

	"moveboss/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware allows only the listed roles past. It must run after
// AuthMiddleware, which sets the role on the context.
func RoleMiddleware(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, "invalid role")
			c.Abort()
			return
		}

		for _, r := range allowed {
			if roleStr == r {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}

// OwnerOnly restricts a route to fleet owners.
func OwnerOnly() gin.HandlerFunc {
	return RoleMiddleware("owner")
}

// DriverOnly restricts a route to drivers.
func DriverOnly() gin.HandlerFunc {
	return RoleMiddleware("driver")
}

// OwnerOrDriver allows either role.
func OwnerOrDriver() gin.HandlerFunc {
	return RoleMiddleware("owner", "driver")
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/pixelplot/ShootBooker/internal/auth"
	"github.com/wb-go/wbf/ginext"
)

// AdminAuth guards the admin API with a bearer token carrying the admin role.
func AdminAuth(jwtSecret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := auth.ParseValidate(jwtSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}
		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin role required"})
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}

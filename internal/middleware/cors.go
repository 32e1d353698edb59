package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// CORS allows browser clients on the configured origins. An empty allowlist
// means any origin, which is only sensible for local development.
func CORS(allowedOrigins []string) ginext.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *ginext.Context) {
		origin := c.GetHeader("Origin")

		permit := len(allowed) == 0
		if !permit {
			_, permit = allowed[origin]
		}

		if permit && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

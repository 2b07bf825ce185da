package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"royal-palace-backend/services"
	"royal-palace-backend/utils"
)

// RequireAdmin guards the read-only admin group with the session token
// issued by POST /api/auth/login. The token is read from the Authorization
// bearer header, falling back to a ?token= query parameter.
func RequireAdmin(admin *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if h := c.GetHeader("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
		}
		if token == "" {
			token = strings.TrimSpace(c.Query("token"))
		}

		if token == "" || !admin.ValidToken(token) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or missing admin token")
			c.Abort()
			return
		}
		c.Next()
	}
}

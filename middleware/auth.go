// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
	"github.com/snipvault/api/util"
)

// Auth validates the bearer access token and places the caller's
// identity and role in the request context.
func Auth(tokens *util.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.ParseAccess(raw)
		if err != nil {
			logger.Warn("Rejected invalid access token", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated
// caller holds one of the given roles. Admins pass every gate.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := util.GetRoleFromContext(c)
		if role == model.RoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		logger.Warn("Caller lacks required role",
			zap.String("role", role),
			zap.Strings("required", roles),
			zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		c.Abort()
	}
}

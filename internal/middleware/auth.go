package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"logitrack/internal/config"
	"logitrack/internal/domain/user"
	"logitrack/pkg/utils"
)

const (
	ContextUserID         = "userID"
	ContextNomUtilisateur = "nomUtilisateur"
	ContextRole           = "role"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		token := parts[1]

		claims, err := utils.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		role, ok := user.NormalizeRole(claims.Role)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, "Unknown role")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextNomUtilisateur, claims.NomUtilisateur)
		c.Set(ContextRole, role)

		c.Next()
	}
}

// UserID reads the authenticated user's ID out of the Gin context.
func UserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// UserRole reads the authenticated user's normalized role.
func UserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack/internal/domain/user"
	"logitrack/pkg/utils"
)

func RoleMiddleware(allowedRoles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := UserRole(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RoleMiddleware(user.RoleAdmin)
}

// GestionnaireAccess covers the manager surface, which admins can also
// operate.
func GestionnaireAccess() gin.HandlerFunc {
	return RoleMiddleware(user.RoleGestionnaire, user.RoleAdmin)
}

func LivreurOnly() gin.HandlerFunc {
	return RoleMiddleware(user.RoleLivreur)
}

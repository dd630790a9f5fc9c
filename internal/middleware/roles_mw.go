package middleware

import (
	"fraud_awareness/internal/apperror"
	"fraud_awareness/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles.
// It must run after JWTAuthMiddleware.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			abortWithError(c, apperror.Forbidden("Admin access required"))
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			abortWithError(c, apperror.Forbidden("Admin access required"))
			return
		}

		for _, allowed := range allowedRoles {
			if userRole == allowed {
				c.Next()
				return
			}
		}

		abortWithError(c, apperror.Forbidden("Admin access required"))
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}

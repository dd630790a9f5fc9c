package middleware

import (
	"net/http"
	"strings"

	"fraud_awareness/internal/apperror"
	"fraud_awareness/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
)

// JWTAuthMiddleware validates the bearer token and attaches the caller's
// identity to the request context. A missing header is 401; a token that
// fails verification is 403, per this API's convention.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperror.Authentication("Authentication token is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, apperror.Authentication("Authentication token is required"))
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			abortWithError(c, apperror.Authentication("Invalid or expired token").WithStatus(http.StatusForbidden))
			return
		}

		// Set user identity in context for downstream handlers
		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}

// abortWithError hands the failure to the error normalization middleware
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
)

// UserKey is the gin context key the resolved user is stored under.
const UserKey = "user"

// TokenVerifier resolves a bearer token to the account it belongs to.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, tokenStr string) (*models.User, error)
}

// RequireAuth resolves the bearer token and attaches the user to the
// request context.
func RequireAuth(userService TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Please authenticate",
			})
			return
		}

		user, err := userService.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Please authenticate",
			})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

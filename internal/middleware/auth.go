// Package middleware provides HTTP middleware for the tracking service.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/service"
	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// AuthMiddleware authenticates requests via the Authorization bearer token.
type AuthMiddleware struct {
	authService service.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth validates the bearer token and stores the resolved user on
// the gin context. Requests without a valid token are rejected with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		user, err := m.authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"
	default:
		return "Invalid token"
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// ExtractToken pulls the bearer token from the Authorization header.
func ExtractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	parts := strings.Split(bearerToken, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

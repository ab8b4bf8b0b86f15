package auth

import (
	"net/http"
	"strings"

	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apperrors.ErrMissingAuthHeader)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abort(c, apperrors.ErrInvalidAuthHeader)
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Warn("rejected bearer token")
			abort(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.User()))

		c.Next()
	}
}

func abort(c *gin.Context, err *apperrors.AuthenticationError) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Message})
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

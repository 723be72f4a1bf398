package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/roster/internal/pkg/apperrors"
	"github.com/campushq/roster/internal/pkg/auth"
)

// StaffIDKey is the gin context key carrying the authenticated staff identity.
const StaffIDKey = "staffID"

// AuthMiddleware authenticates requests before they reach the record and
// attachment handlers (fail-closed).
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token on protected routes. Failures go through
// HandleAPIError: a missing token is 403 (the status the legacy clients
// expect); a malformed, tampered or expired token is 401 with a coded body,
// never a generic server error.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HandleAPIError(c, apperrors.ErrTokenMissing)
			c.Abort()
			return
		}

		claims, err := m.jwtService.Validate(auth.ExtractBearerToken(authHeader))
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(StaffIDKey, claims.StaffID)
		c.Next()
	}
}

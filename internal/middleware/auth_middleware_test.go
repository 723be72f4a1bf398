package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/roster/internal/pkg/auth"
)

func newAuthRouter(t *testing.T, expiration time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		TokenExpiration: expiration,
		TokenIssuer:     "roster.test",
	})

	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"staffId": c.GetInt64(StaffIDKey)})
	})
	return router, jwtService
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := newAuthRouter(t, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_004")
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := newAuthRouter(t, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router, _ := newAuthRouter(t, time.Hour)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		TokenExpiration: -time.Minute,
		TokenIssuer:     "roster.test",
	})
	token, err := expiredService.Generate(1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := newAuthRouter(t, time.Hour)

	token, err := jwtService.Generate(42)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "bearer prefix", header: "Bearer " + token},
		{name: "raw token", header: token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"staffId":42`)
		})
	}
}

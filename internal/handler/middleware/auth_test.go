//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"punchcard/internal/domain/principal"
	"punchcard/internal/handler/middleware"
	"punchcard/internal/pkg/config"
	"punchcard/internal/pkg/jwt"
	"punchcard/internal/usecase"
	"punchcard/tests/common/authtest"
	"punchcard/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, cfg config.JWTConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validator := usecase.NewTokenValidator(jwt.NewService(cfg.Secret, cfg.Issuer))
	auth := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	authed := router.Group("", auth.RequireAuth())
	authed.GET("/me", func(c *gin.Context) {
		actor, ok := middleware.GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID().String(), "role": actor.Role().String()})
	})
	authed.GET("/counter", auth.RequireCounterRole(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	authed.GET("/client", auth.RequireClientRole(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret-key-for-auth-tests", Issuer: "punchcard-test"}
	router := newAuthRouter(t, cfg)
	helper := authtest.NewJWTHelper(cfg)

	t.Run("valid token resolves the principal", func(t *testing.T) {
		userID := uuid.New()
		token := helper.GenerateToken(t, userID, principal.RoleClient, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "client", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		token := helper.CreateExpiredToken(t, uuid.New(), principal.RoleClient, nil)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		foreign := authtest.NewJWTHelper(config.JWTConfig{Secret: "some-other-secret", Issuer: cfg.Issuer})
		token := foreign.GenerateToken(t, uuid.New(), principal.RoleClient, nil)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireCounterRole(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret-key-for-auth-tests", Issuer: "punchcard-test"}
	router := newAuthRouter(t, cfg)
	helper := authtest.NewJWTHelper(cfg)
	businessID := uuid.New()

	t.Run("staff passes", func(t *testing.T) {
		token := helper.GenerateToken(t, uuid.New(), principal.RoleStaff, &businessID)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/counter", nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("owner passes", func(t *testing.T) {
		token := helper.GenerateToken(t, uuid.New(), principal.RoleOwner, &businessID)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/counter", nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("client is rejected", func(t *testing.T) {
		token := helper.GenerateToken(t, uuid.New(), principal.RoleClient, nil)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/counter", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func TestRequireClientRole(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret-key-for-auth-tests", Issuer: "punchcard-test"}
	router := newAuthRouter(t, cfg)
	helper := authtest.NewJWTHelper(cfg)
	businessID := uuid.New()

	t.Run("client passes", func(t *testing.T) {
		token := helper.GenerateToken(t, uuid.New(), principal.RoleClient, nil)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/client", nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("staff is rejected", func(t *testing.T) {
		token := helper.GenerateToken(t, uuid.New(), principal.RoleStaff, &businessID)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/client", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("owner is rejected", func(t *testing.T) {
		token := helper.GenerateToken(t, uuid.New(), principal.RoleOwner, &businessID)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/client", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}

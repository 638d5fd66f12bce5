package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"punchcard/internal/domain/principal"
	"punchcard/internal/handler/httperr"
	"punchcard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth validates the bearer token and stores the resulting
// Principal on the context. Tokens are minted by the external identity
// provider; this service never issues them.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				usecase.ErrTokenMissing, "Access token required")
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized,
				err, "Invalid or expired token")
			return
		}

		c.Set(ctxPrincipalKey, actor)
		c.Next()
	}
}

// RequireCounterRole gates staff-side endpoints (scanning, awarding,
// verifying, coupon management). Must run after RequireAuth.
func (m *AuthMiddleware) RequireCounterRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError,
				usecase.ErrTokenMissing, "Internal server error")
			return
		}

		if !actor.Role().CanOperateCounter() {
			httperr.AbortWithError(c, http.StatusForbidden,
				principal.ErrNoBusinessScope, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

// RequireClientRole gates customer-side endpoints (code issuance,
// balance, redemption). Counter tokens must not feed their own
// ledger, so staff and owners are rejected here. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireClientRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError,
				usecase.ErrTokenMissing, "Internal server error")
			return
		}

		if actor.Role() != principal.RoleClient {
			httperr.AbortWithError(c, http.StatusForbidden,
				principal.ErrClientRoleRequired, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetPrincipal(c *gin.Context) (principal.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return principal.Principal{}, false
	}

	actor, ok := v.(principal.Principal)
	return actor, ok
}

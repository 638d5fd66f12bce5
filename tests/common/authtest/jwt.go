//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"punchcard/internal/domain/principal"
	"punchcard/internal/pkg/config"
	"punchcard/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role principal.Role, businessID *uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(userID, role, businessID, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role principal.Role, businessID *uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(userID, role, businessID, 1*time.Millisecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

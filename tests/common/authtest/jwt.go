//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"loyalty-ledger/internal/domain/principal"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the hosted auth provider does.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer, cfg.Audience)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, id uuid.UUID, role principal.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(id, role.String(), time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, id uuid.UUID, role principal.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(id, role.String(), -time.Minute)
	require.NoError(t, err)
	return token
}

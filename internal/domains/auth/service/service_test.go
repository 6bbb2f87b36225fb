package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	authmodel "contenthub-backend/internal/domains/auth/model"
	"contenthub-backend/pkg/jwt"
)

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
}

func TestExchangeRejectsBadSecret(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, "the-real-secret")

	_, _, err := svc.Exchange(context.Background(), authmodel.ExchangeRequest{
		ExchangeSecret: "guess",
	})

	assert.ErrorIs(t, err, authmodel.ErrBadExchangeSecret)
}

func TestExchangeRejectsEmptySecret(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, "the-real-secret")

	_, _, err := svc.Exchange(context.Background(), authmodel.ExchangeRequest{})

	// Validation fires before the comparison.
	assert.Error(t, err)
	assert.NotErrorIs(t, err, authmodel.ErrBadExchangeSecret)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc := NewAuthService(nil, newTestJWTManager(), nil, "s")

	_, err := svc.Refresh(context.Background(), authmodel.RefreshRequest{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, authmodel.ErrInvalidRefreshToken)
}

func TestLogoutIgnoresInvalidToken(t *testing.T) {
	svc := NewAuthService(nil, newTestJWTManager(), nil, "s")

	err := svc.Logout(context.Background(), authmodel.LogoutRequest{RefreshToken: "garbage"})

	assert.NoError(t, err)
}

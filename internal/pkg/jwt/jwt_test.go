package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/auth"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
)

func TestJWTService_GenerateAndReadCaller(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "8h")

	token, expiresAt, err := svc.GenerateAccessToken(42, "staf@unand.ac.id", user.RoleTenaga)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(8*time.Hour).Unix(), expiresAt, 5)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	caller, err := CallerFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), caller.UserID)
	assert.Equal(t, user.RoleTenaga, caller.Role)
	assert.Equal(t, "staf@unand.ac.id", caller.Email)
	assert.False(t, caller.IsAdmin())
	assert.True(t, caller.Can(user.PermissionCutiCreate))
	assert.False(t, caller.Can(user.PermissionCutiApprove))
}

func TestJWTService_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("secret", "eight hours")
	_, _, err := svc.GenerateAccessToken(1, "a@b.co", user.RoleAdmin)
	assert.Error(t, err)
}

func TestCallerFromContext_NoToken(t *testing.T) {
	_, err := CallerFromContext(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTService_RevokeAndPurge(t *testing.T) {
	svc := NewJWTService("secret", "1h")
	now := time.Now()

	svc.RevokeToken("expired", now.Add(-time.Minute).Unix())
	svc.RevokeToken("live", now.Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
	assert.False(t, svc.IsTokenRevoked("other"))

	assert.Equal(t, 1, svc.PurgeRevoked(now))
	assert.False(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
}

func TestWithCaller(t *testing.T) {
	ctx := WithCaller(context.Background(), Caller{UserID: 7, Email: "admin@unand.ac.id", Role: user.RoleAdmin})

	caller, err := CallerFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), caller.UserID)
	assert.True(t, caller.IsAdmin())
}

package crypto

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codecamp-2025.net/internal/config"
)

func newTestService() *JWTServiceImpl {
	return &JWTServiceImpl{HMACSecretKey: "test-secret"}
}

func TestGenerateAndVerifyTokenHMAC(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	token, err := svc.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, map[string]interface{}{
		"username": "alice",
		"user_id":  "u-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	valid, err := svc.VerifyTokenHMAC(ctx, token, jwt.SigningMethodHS256.Name)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := newTestService().GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, map[string]interface{}{
		"username": "alice",
	})
	require.NoError(t, err)

	other := &JWTServiceImpl{HMACSecretKey: "other-secret"}
	valid, err := other.VerifyTokenHMAC(ctx, token, jwt.SigningMethodHS256.Name)
	assert.Error(t, err)
	assert.False(t, valid)
}

func TestDecodeTokenPayload(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	token, err := svc.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, map[string]interface{}{
		"username": "alice",
		"user_id":  "u-1",
	})
	require.NoError(t, err)

	payload, err := svc.DecodeTokenPayload(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.Username)
	assert.Equal(t, "u-1", payload.UserID)
}

func TestDecodeTokenPayloadMalformed(t *testing.T) {
	svc := newTestService()

	_, err := svc.DecodeTokenPayload(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestPasswordRoundTrip(t *testing.T) {
	svc := NewJWTService(&config.JwtConfig{Secret: "s"})
	ctx := context.Background()

	hash, err := svc.EncryptPassword(ctx, "hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	valid, err := svc.VerifyPassword(ctx, hash, "hunter2")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.VerifyPassword(ctx, hash, "wrong")
	assert.Error(t, err)
	assert.False(t, valid)
}

package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret: "test-secret-key-for-jwt-signing",
		Issuer: "crowdpulse-test",
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := getTestConfig()

	token, expiresAt, err := GenerateToken("alice", cfg, time.Hour)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserID)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	valid, _, err := GenerateToken("alice", cfg, time.Hour)
	require.NoError(t, err)
	expired, _, err := GenerateToken("alice", cfg, -time.Minute)
	require.NoError(t, err)
	foreign, _, err := GenerateToken("alice", models.JWTConfig{Secret: cfg.Secret, Issuer: "someone-else"}, time.Hour)
	require.NoError(t, err)
	anonymous, _, err := GenerateToken("", cfg, time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, models.WebSocketClaims{UserID: "alice"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		cfg         models.JWTConfig
		expectError bool
	}{
		{"valid token", valid, cfg, false},
		{"wrong secret", valid, models.JWTConfig{Secret: "other", Issuer: cfg.Issuer}, true},
		{"expired", expired, cfg, true},
		{"issuer mismatch", foreign, cfg, true},
		{"issuer not enforced", foreign, models.JWTConfig{Secret: cfg.Secret}, false},
		{"missing user", anonymous, cfg, true},
		{"unsigned", unsigned, cfg, true},
		{"garbage", "not.a.token", cfg, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.cfg)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", claims.UserID)
		})
	}
}

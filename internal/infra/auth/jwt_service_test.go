package auth

import (
	"testing"
	"time"

	"authsvc/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = testAccessSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signTestToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestJWTService_EncryptAndDecrypt(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	accountID := uuid.New().String()

	token, err := svc.Encrypt(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	value, err := svc.Decrypt(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, value)
}

func TestJWTService_EncryptSetsExpiry(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.Encrypt("any_id")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testAccessSecret), nil
	})
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_DecryptInvalidTokensYieldNothing(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	now := time.Now()

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "not a jwt",
			token: "clearly-not-a-jwt-token-format",
		},
		{
			name:  "empty",
			token: "",
		},
		{
			name: "expired",
			token: signTestToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.RegisteredClaims{
				Subject:   "any_id",
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}),
		},
		{
			name: "signed with another secret",
			token: signTestToken(t, jwt.SigningMethodHS256, []byte("another_secret"), jwt.RegisteredClaims{
				Subject:   "any_id",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
		{
			name: "unexpected signing method",
			token: signTestToken(t, jwt.SigningMethodHS512, []byte(testAccessSecret), jwt.RegisteredClaims{
				Subject:   "any_id",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
		{
			name: "missing expiry",
			token: signTestToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.RegisteredClaims{
				Subject: "any_id",
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := svc.Decrypt(tt.token)
			assert.NoError(t, err)
			assert.Empty(t, value)
		})
	}
}

func TestJWTService_DecryptTamperedToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.Encrypt("any_id")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	if tampered == token {
		tampered = token[:len(token)-2] + "yy"
	}

	value, err := svc.Decrypt(tampered)
	assert.NoError(t, err)
	assert.Empty(t, value)
}

func TestJWTService_DecryptKeyUnavailable(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.Encrypt("any_id")
	require.NoError(t, err)

	svc.accessSecret = nil

	value, err := svc.Decrypt(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errSecretUnavailable)
	assert.Empty(t, value)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc := newTestJWTService(t, 0)
	assert.Equal(t, defaultAccessTTL, svc.accessTTL)
}

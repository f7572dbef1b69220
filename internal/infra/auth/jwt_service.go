// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"authsvc/config"
	"authsvc/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const defaultAccessTTL = 24 * time.Hour

var errSecretUnavailable = errors.New("access token secret is not configured")

// jwtService signs and verifies access tokens with HS256.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	accessTTL := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    accessTTL,
		parser:       jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}, nil
}

// Encrypt issues an access token whose subject is value.
func (s *jwtService) Encrypt(value string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   value,                                    // Subject (who the token is for)
		IssuedAt:  jwt.NewNumericDate(now),                  // Issued At
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)), // Expiration Time
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Decrypt returns the subject of a valid token. Malformed, expired, or
// tampered tokens yield "" and no error; only a failure to resolve the
// verification key is reported.
func (s *jwtService) Decrypt(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := s.parser.ParseWithClaims(token, claims, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenUnverifiable) {
			return "", errors.Wrap(err, "failed to resolve access token key")
		}

		return "", nil
	}

	return claims.Subject, nil
}

func (s *jwtService) keyFunc(*jwt.Token) (any, error) {
	if len(s.accessSecret) == 0 {
		return nil, errSecretUnavailable
	}

	return s.accessSecret, nil
}

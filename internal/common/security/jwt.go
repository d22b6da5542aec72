package security

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"galaxy_api/internal/common"
	"galaxy_api/internal/domain/model"
	"galaxy_api/internal/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

var (
	signingKey []byte
	tokenTTL   time.Duration
)

// InitJWT captures the signing key and token lifetime from process
// configuration. Must be called once before any token is issued or verified.
func InitJWT() {
	signingKey = config.AppConfig.JWTKey
	tokenTTL = config.AppConfig.JWTExp
}

// Claims is the decoded payload of a bearer token: subject (the user's
// email), the role held at issuance time, and the expiry. The role claim is
// informational only; authorization always re-reads the persisted role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 token for user, expiring after the
// configured lifetime.
func GenerateToken(user *model.User) (string, error) {
	token, err := generateTokenWithExpiry(user, time.Now().Add(tokenTTL))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func generateTokenWithExpiry(user *model.User, expiresAt time.Time) (string, error) {
	if len(signingKey) == 0 {
		return "", errors.New("jwt signing key is not initialized")
	}

	role := user.Role
	if !role.Valid() {
		// Encoding still succeeds, but an unrecognized persisted role is a
		// data-integrity anomaly worth surfacing in the logs.
		log.Printf("issuing token with invalid role %q for user %s", user.Role, user.Email)
		role = model.RoleInvalid
	}

	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}

// ParseAuthorizationHeader validates the raw Authorization header value and
// returns the decoded claims. Failures are classified so callers can map
// them to distinct responses:
//
//	absent header            -> common.ErrMissingAuthHeader
//	no "Bearer " prefix      -> common.ErrMalformedAuthHeader
//	expired token            -> common.ErrExpiredToken
//	anything else that fails -> common.ErrInvalidToken
func ParseAuthorizationHeader(header string) (*Claims, error) {
	if header == "" {
		return nil, common.ErrMissingAuthHeader
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, common.ErrMalformedAuthHeader
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, bearerPrefix), claims,
		func(t *jwt.Token) (interface{}, error) {
			return signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	"galaxy_api/internal/common"
	"galaxy_api/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestKey(t *testing.T) {
	t.Helper()
	signingKey = []byte("test-signing-key")
	tokenTTL = time.Hour
}

func testUser(role model.Role) *model.User {
	return &model.User{
		ID:       1,
		Email:    "obelisk@ifi.uio.no",
		FullName: "Obelix fra IFI",
		Role:     role,
	}
}

func TestGenerateToken_VerifyRoundTrip(t *testing.T) {
	initTestKey(t)

	token, err := GenerateToken(testUser(model.RoleEditor))
	require.NoError(t, err)

	claims, err := ParseAuthorizationHeader("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "obelisk@ifi.uio.no", claims.Subject)
	assert.Equal(t, "EDITOR", claims.Role)
	assert.NotEmpty(t, claims.ID) // jti
}

func TestGenerateToken_TokensDifferPerIssuance(t *testing.T) {
	initTestKey(t)
	user := testUser(model.RoleReader)

	first, err := GenerateToken(user)
	require.NoError(t, err)
	second, err := GenerateToken(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	_, err = ParseAuthorizationHeader("Bearer " + first)
	assert.NoError(t, err)
	_, err = ParseAuthorizationHeader("Bearer " + second)
	assert.NoError(t, err)
}

func TestGenerateToken_UninitializedKey(t *testing.T) {
	signingKey = nil
	tokenTTL = time.Hour

	_, err := GenerateToken(testUser(model.RoleReader))
	assert.Error(t, err)
}

func TestParseAuthorizationHeader_FailureTaxonomy(t *testing.T) {
	initTestKey(t)

	token, err := GenerateToken(testUser(model.RoleReader))
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"missing header", "", common.ErrMissingAuthHeader},
		{"no bearer prefix", token, common.ErrMalformedAuthHeader},
		{"lowercase scheme", "bearer " + token, common.ErrMalformedAuthHeader},
		{"garbage token", "Bearer not.a.jwt", common.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAuthorizationHeader(tt.header)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseAuthorizationHeader_TamperedSignature(t *testing.T) {
	initTestKey(t)

	token, err := GenerateToken(testUser(model.RoleAdmin))
	require.NoError(t, err)

	// Flip one character of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = ParseAuthorizationHeader("Bearer " + tampered)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.False(t, errors.Is(err, common.ErrExpiredToken))
}

func TestParseAuthorizationHeader_WrongKey(t *testing.T) {
	initTestKey(t)
	token, err := GenerateToken(testUser(model.RoleReader))
	require.NoError(t, err)

	signingKey = []byte("a-different-key")
	_, err = ParseAuthorizationHeader("Bearer " + token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseAuthorizationHeader_ExpiryBoundary(t *testing.T) {
	initTestKey(t)
	user := testUser(model.RoleWriter)

	expired, err := generateTokenWithExpiry(user, time.Now().Add(-time.Second))
	require.NoError(t, err)
	_, err = ParseAuthorizationHeader("Bearer " + expired)
	assert.ErrorIs(t, err, common.ErrExpiredToken)

	// Just inside the validity window still verifies.
	fresh, err := generateTokenWithExpiry(user, time.Now().Add(time.Minute))
	require.NoError(t, err)
	claims, err := ParseAuthorizationHeader("Bearer " + fresh)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Subject)
}

func TestGenerateToken_InvalidRoleEncodedAsInvalid(t *testing.T) {
	initTestKey(t)

	token, err := GenerateToken(testUser(model.Role("OVERLORD")))
	require.NoError(t, err)

	claims, err := ParseAuthorizationHeader("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "INVALID", claims.Role)
}

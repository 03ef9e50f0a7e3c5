package auth

import (
	"errors"
	"testing"
	"time"

	"backoffice/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	ti, err := NewTokenIssuer("test-signing-key-with-enough-length", "backoffice", "backoffice-clients", time.Hour)
	require.NoError(t, err)
	return ti
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	ti := newIssuer(t)
	u := models.User{ID: uuid.New(), Username: "alice", Role: models.RoleAdmin}

	raw, err := ti.Issue(u)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := ti.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "backoffice", claims.Issuer)
}

func TestTokenIssuer_Expired(t *testing.T) {
	ti := newIssuer(t)
	ti.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, err := ti.Issue(models.User{ID: uuid.New(), Username: "bob", Role: models.RoleUser})
	require.NoError(t, err)

	ti.now = time.Now
	_, err = ti.Parse(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_RejectsForeignTokens(t *testing.T) {
	ti := newIssuer(t)
	u := models.User{ID: uuid.New(), Username: "eve", Role: models.RoleUser}

	otherKey, err := NewTokenIssuer("another-signing-key", "backoffice", "backoffice-clients", time.Hour)
	require.NoError(t, err)
	otherAud, err := NewTokenIssuer("test-signing-key-with-enough-length", "backoffice", "someone-else", time.Hour)
	require.NoError(t, err)
	otherIss, err := NewTokenIssuer("test-signing-key-with-enough-length", "elsewhere", "backoffice-clients", time.Hour)
	require.NoError(t, err)

	for name, issuer := range map[string]*TokenIssuer{"key": otherKey, "audience": otherAud, "issuer": otherIss} {
		raw, err := issuer.Issue(u)
		require.NoError(t, err)
		_, err = ti.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}

	_, err = ti.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsNoneAlgorithm(t *testing.T) {
	ti := newIssuer(t)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "backoffice",
			Audience:  jwt.ClaimStrings{"backoffice-clients"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: uuid.NewString(),
		Role:   models.RoleAdmin,
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ti.Parse(raw)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestNewTokenIssuer_RequiresConfig(t *testing.T) {
	_, err := NewTokenIssuer("", "iss", "aud", time.Hour)
	assert.Error(t, err)
	_, err = NewTokenIssuer("k", "iss", "aud", 0)
	assert.Error(t, err)
}

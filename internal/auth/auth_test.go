package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, CheckPassword(hash, "password123"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	token, err := issuer.MakeToken("user-1", domain.RoleProvider)
	require.NoError(t, err)

	claims, err := issuer.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "provider", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-one", time.Minute).MakeToken("user-1", domain.RoleCustomer)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-two", time.Minute).ParseToken(token)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestParseToken_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.MakeToken("user-1", domain.RoleCustomer)
	require.NoError(t, err)

	_, err = issuer.ParseToken(token)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestParseToken_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)

	_, err := issuer.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrBadToken)
}

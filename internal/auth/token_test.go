package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodcourt/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &domain.User{ID: 7, Email: "thor@india.com", Role: domain.RoleMember, Country: "india"}

	token, err := NewToken(secret, user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := ParseToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, parsed.ID)
	assert.Equal(t, user.Email, parsed.Email)
	assert.Equal(t, user.Role, parsed.Role)
	assert.Equal(t, user.Country, parsed.Country)
}

func TestTokenWrongSecret(t *testing.T) {
	user := &domain.User{ID: 1, Email: "nick.fury@shield.com", Role: domain.RoleAdmin}

	token, err := NewToken([]byte("secret-a"), user)
	assert.NoError(t, err)

	_, err = ParseToken([]byte("secret-b"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ParseToken([]byte("secret"), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

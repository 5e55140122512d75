package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	p := NewMockProvider(decimal.NewFromInt(500_000))

	ident, err := p.Login("trader@example.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "trader", ident.Name)
	assert.Equal(t, "trader@example.com", ident.Email)
	assert.True(t, ident.StartingBalance.Equal(decimal.NewFromInt(500_000)))
	assert.NotEmpty(t, ident.ID)

	// Two logins are two identities.
	again, err := p.Login("trader@example.com", "secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, ident.ID, again.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	p := NewMockProvider(DefaultStartingBalance)

	_, err := p.Login("", "longenough")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.Login("trader@example.com", "short")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignup(t *testing.T) {
	p := NewMockProvider(decimal.Decimal{}) // zero falls back to the default

	ident, err := p.Signup("Rahim", "rahim@example.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "Rahim", ident.Name)
	assert.True(t, ident.StartingBalance.Equal(DefaultStartingBalance))

	_, err = p.Signup("", "rahim@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

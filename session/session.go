// Package session supplies the authenticated identity a ledger is created
// for. Authentication here is simulated: there is no credential store and no
// password hashing, only basic request-shape checks.
package session

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the account owner a fresh ledger is seeded from.
type Identity struct {
	ID              string
	Name            string
	Email           string
	StartingBalance decimal.Decimal
}

type Provider interface {
	Login(email, password string) (Identity, error)
	Signup(name, email, password string) (Identity, error)
}

// MockProvider accepts any email with a password of at least six
// characters and hands out a fresh identity with the configured starting
// allowance (10 lakh BDT by default).
type MockProvider struct {
	startingBalance decimal.Decimal
}

// DefaultStartingBalance is the virtual cash a new account begins with.
var DefaultStartingBalance = decimal.NewFromInt(1_000_000)

func NewMockProvider(startingBalance decimal.Decimal) *MockProvider {
	if startingBalance.IsZero() {
		startingBalance = DefaultStartingBalance
	}
	return &MockProvider{startingBalance: startingBalance}
}

func (p *MockProvider) Login(email, password string) (Identity, error) {
	if email == "" || len(password) < 6 {
		return Identity{}, ErrInvalidCredentials
	}
	name, _, _ := strings.Cut(email, "@")
	return p.identity(name, email), nil
}

func (p *MockProvider) Signup(name, email, password string) (Identity, error) {
	if name == "" || email == "" || len(password) < 6 {
		return Identity{}, ErrInvalidCredentials
	}
	return p.identity(name, email), nil
}

func (p *MockProvider) identity(name, email string) Identity {
	return Identity{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		StartingBalance: p.startingBalance,
	}
}

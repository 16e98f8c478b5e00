package core

import (
	"errors"
	"strings"

	"tradeloop/internal/types"
)

// Validation notices surfaced by the auth form. These are user-facing
// strings, not programmatic error kinds.
var (
	ErrInvalidCredentials = errors.New("Invalid email or password.")
	ErrMissingFields      = errors.New("Please fill in all fields.")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters.")
	ErrPasswordMismatch   = errors.New("Passwords do not match.")
	ErrEmailTaken         = errors.New("An account with this email already exists.")
)

// NoticeAccountCreated confirms a successful registration.
const NoticeAccountCreated = "Account created. Sign in to continue."

const minPasswordLen = 6

// Accounts is the in-memory account registry. Passwords are compared in
// plaintext; the whole registry evaporates on exit.
type Accounts struct {
	accounts []types.Account
}

// NewAccounts seeds the registry with the demo account.
func NewAccounts() *Accounts {
	return &Accounts{accounts: []types.Account{{
		Name:     "Demo Trader",
		Email:    "demo@tradeloop.com",
		Password: "demo1234",
		Location: "San Francisco, CA",
	}}}
}

// Authenticate matches the email case-insensitively and compares the
// password directly.
func (a *Accounts) Authenticate(email, password string) (types.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, account := range a.accounts {
		if strings.ToLower(account.Email) == email && account.Password == password {
			return account, nil
		}
	}
	return types.Account{}, ErrInvalidCredentials
}

// Register validates and appends a new account. Registration never
// touches any session state; the user still signs in afterwards.
func (a *Accounts) Register(name, email, location, password, confirm string) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	location = strings.TrimSpace(location)

	if name == "" || email == "" || location == "" || password == "" {
		return ErrMissingFields
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	for _, account := range a.accounts {
		if strings.ToLower(account.Email) == email {
			return ErrEmailTaken
		}
	}
	a.accounts = append(a.accounts, types.Account{
		Name:     name,
		Email:    email,
		Password: password,
		Location: location,
	})
	return nil
}

package core

import "testing"

func TestAuthenticateDemoAccount(t *testing.T) {
	accounts := NewAccounts()

	account, err := accounts.Authenticate("demo@tradeloop.com", "demo1234")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if account.Name != "Demo Trader" {
		t.Fatalf("account name: got %q", account.Name)
	}

	// Email match is case-insensitive; password is not.
	if _, err := accounts.Authenticate("  DEMO@TradeLoop.COM ", "demo1234"); err != nil {
		t.Fatalf("case-insensitive email: %v", err)
	}
	if _, err := accounts.Authenticate("demo@tradeloop.com", "DEMO1234"); err != ErrInvalidCredentials {
		t.Fatalf("wrong password: got %v want %v", err, ErrInvalidCredentials)
	}
	if _, err := accounts.Authenticate("nobody@tradeloop.com", "demo1234"); err != ErrInvalidCredentials {
		t.Fatalf("unknown email: got %v want %v", err, ErrInvalidCredentials)
	}
}

func TestRegisterValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		fields  [5]string // name, email, location, password, confirm
		wantErr error
	}{
		{name: "missing name", fields: [5]string{"", "a@b.com", "Oakland", "secret1", "secret1"}, wantErr: ErrMissingFields},
		{name: "missing email", fields: [5]string{"Ana", "", "Oakland", "secret1", "secret1"}, wantErr: ErrMissingFields},
		{name: "missing location", fields: [5]string{"Ana", "a@b.com", "", "secret1", "secret1"}, wantErr: ErrMissingFields},
		{name: "missing password", fields: [5]string{"Ana", "a@b.com", "Oakland", "", ""}, wantErr: ErrMissingFields},
		{name: "short password", fields: [5]string{"Ana", "a@b.com", "Oakland", "12345", "12345"}, wantErr: ErrPasswordTooShort},
		{name: "short beats mismatch", fields: [5]string{"Ana", "a@b.com", "Oakland", "12345", "67890"}, wantErr: ErrPasswordTooShort},
		{name: "mismatch", fields: [5]string{"Ana", "a@b.com", "Oakland", "secret1", "secret2"}, wantErr: ErrPasswordMismatch},
		{name: "taken email", fields: [5]string{"Ana", "demo@tradeloop.com", "Oakland", "secret1", "secret1"}, wantErr: ErrEmailTaken},
		{name: "taken email case-insensitive", fields: [5]string{"Ana", "Demo@TradeLoop.com", "Oakland", "secret1", "secret1"}, wantErr: ErrEmailTaken},
		{name: "valid", fields: [5]string{"Ana", "ana@b.com", "Oakland", "secret1", "secret1"}, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := NewAccounts()
			err := accounts.Register(tt.fields[0], tt.fields[1], tt.fields[2], tt.fields[3], tt.fields[4])
			if err != tt.wantErr {
				t.Fatalf("register: got %v want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	accounts := NewAccounts()
	if err := accounts.Register("Ana", "Ana@Example.com", "Oakland, CA", "secret1", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Registration alone never signs anyone in; the account is simply
	// available to authenticate against, with the email normalized.
	account, err := accounts.Authenticate("ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("authenticate new account: %v", err)
	}
	if account.Location != "Oakland, CA" {
		t.Fatalf("location: got %q", account.Location)
	}

	if err := accounts.Register("Ana Again", "ana@example.com", "Berkeley", "secret1", "secret1"); err != ErrEmailTaken {
		t.Fatalf("duplicate register: got %v want %v", err, ErrEmailTaken)
	}
}

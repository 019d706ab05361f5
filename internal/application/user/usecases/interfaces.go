package usecases

import "helpdesk/internal/shared/authorization"

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens for authenticated accounts.
type TokenIssuer interface {
	Generate(email string, role authorization.UserRole) (string, error)
}

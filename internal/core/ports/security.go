package ports

import (
	"eats/internal/core/domain/model/user"
)

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer issues and verifies bearer tokens that identify a caller.
type TokenIssuer interface {
	Issue(caller user.Caller) (string, error)

	// Parse returns the caller a valid token was issued for.
	Parse(token string) (user.Caller, error)
}

package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts and
// their pending email verifications.
type UserRepository interface {
	// Add persists a new user and assigns its store identity.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists email, password hash and verification flag changes.
	Update(ctx context.Context, aggregate *user.User) error

	// Get returns the user with the given id or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// GetByEmail looks a user up by normalized email.
	// Returns an ObjectNotFoundError when no account uses the address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// ExistsByEmail reports whether an account already uses the address.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// AddVerification stores a verification code, replacing any earlier
	// code issued to the same user.
	AddVerification(ctx context.Context, verification user.Verification) error

	// GetVerification returns the verification issued with code.
	GetVerification(ctx context.Context, code kernel.Token) (user.Verification, error)

	// DeleteVerification removes the verification issued with code.
	DeleteVerification(ctx context.Context, code kernel.Token) error
}

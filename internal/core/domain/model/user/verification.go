package user

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
)

// Verification is a pending email confirmation. Each user has at most one;
// issuing a new one replaces the old code.
type Verification struct {
	code   kernel.Token
	userID kernel.ID
}

// NewVerification issues a fresh code for a persisted user.
func NewVerification(userID kernel.ID) (Verification, error) {
	if err := userID.Validate(); err != nil {
		return Verification{}, err
	}
	return Verification{code: kernel.NewToken(), userID: userID}, nil
}

// RestoreVerification rebuilds a stored verification.
func RestoreVerification(code kernel.Token, userID kernel.ID) (Verification, error) {
	if err := errors.Join(code.Validate(), userID.Validate()); err != nil {
		return Verification{}, err
	}
	return Verification{code: code, userID: userID}, nil
}

func (v Verification) Code() kernel.Token {
	return v.code
}

func (v Verification) UserID() kernel.ID {
	return v.userID
}

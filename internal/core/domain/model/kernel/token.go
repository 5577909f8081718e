package kernel

import (
	"fmt"

	"eats/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTokenIsNotConstructed is returned when validating the zero Token.
var ErrTokenIsNotConstructed = errs.NewValueIsRequiredError("Token must be created via NewToken or ParseToken")

// Token is an opaque random value backed by a version 4 UUID. It is used for
// email verification codes and for naming uploaded objects.
//
// Example:
//
//	code := kernel.NewToken()
//	mailer.SendVerification(ctx, email, code.String())
type Token struct {
	value uuid.UUID
}

// NewToken generates a fresh random token.
func NewToken() Token {
	return Token{value: uuid.New()}
}

// ParseToken restores a token from its string form.
func ParseToken(s string) (Token, error) {
	value, err := uuid.Parse(s)
	if err != nil {
		return Token{}, errs.NewValueIsInvalidErrorWithCause("token", fmt.Errorf("invalid token format: %w", err))
	}
	token := Token{value: value}
	if err = token.Validate(); err != nil {
		return Token{}, err
	}
	return token, nil
}

func (t Token) String() string {
	return t.value.String()
}

// IsEqual compares two tokens by value.
func (t Token) IsEqual(other Token) bool {
	return t.value == other.value
}

// Validate rejects the zero token.
func (t Token) Validate() error {
	if t.value == uuid.Nil {
		return ErrTokenIsNotConstructed
	}
	return nil
}

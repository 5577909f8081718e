package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrVerifyEmailCommandIsNotConstructed = errors.New(
	"VerifyEmailCommand must be created via NewVerifyEmailCommand constructor",
)

// VerifyEmailCommand confirms an email address with the mailed code.
type VerifyEmailCommand struct {
	code kernel.Token

	guard guard.ConstructorGuard
}

func NewVerifyEmailCommand(code string) (VerifyEmailCommand, error) {
	token, err := kernel.ParseToken(code)
	if err != nil {
		return VerifyEmailCommand{}, err
	}
	return VerifyEmailCommand{code: token, guard: guard.NewConstructorGuard()}, nil
}

func (c VerifyEmailCommand) Validate() error {
	return c.guard.Validate(ErrVerifyEmailCommandIsNotConstructed)
}

func (c VerifyEmailCommand) Code() kernel.Token {
	return c.code
}

package commands

import (
	"context"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// LoginCommandHandler checks credentials and issues a token for the account.
// An unknown email and a wrong password are reported the same way.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	email := user.NormalizeEmail(command.Email())
	account, err := uow.UserRepository().GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err = h.hasher.Compare(account.PasswordHash(), command.Password()); err != nil {
		return "", errs.NewObjectNotFoundErrorWithCause("user", email, err)
	}

	caller, err := account.Caller()
	if err != nil {
		return "", err
	}

	return h.issuer.Issue(caller)
}

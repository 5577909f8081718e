package commands

import (
	"context"
)

// VerifyEmailCommandHandler marks the owner of a verification code verified
// and consumes the code.
type VerifyEmailCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewVerifyEmailCommandHandler(uowFactory AccountUoWFactory) VerifyEmailCommandHandler {
	return VerifyEmailCommandHandler{uowFactory: uowFactory}
}

// Handle fails with an ObjectNotFoundError for an unknown code.
func (h VerifyEmailCommandHandler) Handle(ctx context.Context, command VerifyEmailCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()

	verification, err := users.GetVerification(ctx, command.Code())
	if err != nil {
		return err
	}

	account, err := users.Get(ctx, verification.UserID())
	if err != nil {
		return err
	}

	account.Verify()
	if err = users.Update(ctx, account); err != nil {
		return err
	}

	if err = users.DeleteVerification(ctx, verification.Code()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

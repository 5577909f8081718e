package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// EditProfileCommandHandler applies profile changes. A new email address
// resets verification and is mailed a fresh code after commit.
type EditProfileCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	logger     *slog.Logger
}

func NewEditProfileCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) EditProfileCommandHandler {
	return EditProfileCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger.With("component", "edit_profile"),
	}
}

func (h EditProfileCommandHandler) Handle(ctx context.Context, command EditProfileCommand) error {
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

	account, err := users.Get(ctx, command.Caller().ID())
	if err != nil {
		return err
	}

	var verification *user.Verification
	if email, ok := command.Email(); ok && user.NormalizeEmail(email) != account.Email() {
		exists, existsErr := users.ExistsByEmail(ctx, user.NormalizeEmail(email))
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewConflictError(ReasonEmailTaken)
		}

		if _, err = account.ChangeEmail(email); err != nil {
			return err
		}

		issued, issueErr := user.NewVerification(account.ID())
		if issueErr != nil {
			return issueErr
		}
		verification = &issued
	}

	if password, ok := command.Password(); ok {
		hash, hashErr := h.hasher.Hash(password)
		if hashErr != nil {
			return hashErr
		}
		if err = account.ChangePasswordHash(hash); err != nil {
			return err
		}
	}

	if err = users.Update(ctx, account); err != nil {
		return err
	}

	if verification != nil {
		if err = users.AddVerification(ctx, *verification); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if verification != nil {
		sendVerification(ctx, h.mailer, h.logger, account.Email(), *verification)
	}
	return nil
}

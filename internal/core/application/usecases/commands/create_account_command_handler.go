package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// CreateAccountCommandHandler stores a new account with a hashed password and
// mails it a verification code. A mail failure does not undo the account.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	logger     *slog.Logger
}

func NewCreateAccountCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger.With("component", "create_account"),
	}
}

// Handle fails with a ConflictError when the email is already registered.
func (h CreateAccountCommandHandler) Handle(ctx context.Context, command CreateAccountCommand) error {
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

	exists, err := users.ExistsByEmail(ctx, user.NormalizeEmail(command.Email()))
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError(ReasonEmailTaken)
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return err
	}

	account, err := user.NewUser(command.Email(), hash, command.Role())
	if err != nil {
		return err
	}

	if err = users.Add(ctx, account); err != nil {
		return err
	}

	verification, err := user.NewVerification(account.ID())
	if err != nil {
		return err
	}

	if err = users.AddVerification(ctx, verification); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	sendVerification(ctx, h.mailer, h.logger, account.Email(), verification)
	return nil
}

func sendVerification(
	ctx context.Context,
	mailer ports.Mailer,
	logger *slog.Logger,
	email string,
	verification user.Verification,
) {
	if err := mailer.SendVerification(ctx, email, verification.Code().String()); err != nil {
		logger.ErrorContext(ctx, "Failed to send verification email", "email", email, "error", err)
	}
}

package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAccountCommand(t *testing.T) {
	cmd, err := commands.NewCreateAccountCommand("nico@example.com", "secret", user.Owner)
	require.NoError(t, err)
	assert.Equal(t, "nico@example.com", cmd.Email())
	assert.Equal(t, "secret", cmd.Password())
	assert.Equal(t, user.Owner, cmd.Role())

	_, err = commands.NewCreateAccountCommand("", "", user.UnknownRole)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAccountCommand(" Nico@Example.com", "secret", user.Client)
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUoW)
	hasher := new(MockPasswordHasher)
	mailer := new(MockMailer)

	var code string
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("ExistsByEmail", ctx, "nico@example.com").Return(false, nil).Once(),
		hasher.On("Hash", "secret").Return("hashed", nil).Once(),
		users.On("Add", ctx, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*user.User).AssignID(7))
			}).
			Return(nil).Once(),
		users.On("AddVerification", ctx, mock.AnythingOfType("user.Verification")).
			Run(func(args mock.Arguments) {
				v := args.Get(1).(user.Verification)
				assert.Equal(t, kernel.ID(7), v.UserID())
				code = v.Code().String()
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		mailer.On("SendVerification", ctx, "nico@example.com", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				assert.Equal(t, code, args.String(2))
			}).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateAccountCommandHandler(factory, hasher, mailer, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	users.AssertExpectations(t)
	uow.AssertExpectations(t)
	hasher.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestCreateAccountCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAccountCommand("nico@example.com", "secret", user.Client)
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUoW)
	hasher := new(MockPasswordHasher)
	mailer := new(MockMailer)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("ExistsByEmail", ctx, "nico@example.com").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateAccountCommandHandler(factory, hasher, mailer, discardLogger())
	err = handler.Handle(ctx, cmd)

	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, commands.ReasonEmailTaken, conflict.Reason)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateAccountCommandHandler_Handle_MailFailureIsNotReturned(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAccountCommand("nico@example.com", "secret", user.Client)
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUoW)
	hasher := new(MockPasswordHasher)
	mailer := new(MockMailer)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	users.On("ExistsByEmail", ctx, "nico@example.com").Return(false, nil).Once()
	hasher.On("Hash", "secret").Return("hashed", nil).Once()
	users.On("Add", ctx, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*user.User).AssignID(7))
		}).
		Return(nil).Once()
	users.On("AddVerification", ctx, mock.AnythingOfType("user.Verification")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	mailer.On("SendVerification", ctx, "nico@example.com", mock.Anything).Return(errors.New("smtp down")).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateAccountCommandHandler(factory, hasher, mailer, discardLogger())

	require.NoError(t, handler.Handle(ctx, cmd))
	mailer.AssertExpectations(t)
}

func TestCreateAccountCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockAccountUoWFactory)
	handler := commands.NewCreateAccountCommandHandler(factory, nil, nil, discardLogger())

	err := handler.Handle(t.Context(), commands.CreateAccountCommand{})

	require.ErrorIs(t, err, commands.ErrCreateAccountCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	account, err := user.RestoreUser(7, "nico@example.com", "hashed", user.Owner, true)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		lookupErr  error
		compareErr error
		wantToken  string
	}{
		{name: "valid credentials", wantToken: "jwt"},
		{name: "unknown email", lookupErr: errs.NewObjectNotFoundError("user", "nico@example.com")},
		{name: "wrong password", compareErr: errors.New("mismatch")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, cmdErr := commands.NewLoginCommand("Nico@Example.com", "secret")
			require.NoError(t, cmdErr)

			users := new(MockUserRepository)
			uow := new(MockUoW)
			hasher := new(MockPasswordHasher)
			issuer := new(MockTokenIssuer)

			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("UserRepository").Return(users).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if tc.lookupErr != nil {
				users.On("GetByEmail", ctx, "nico@example.com").Return(nil, tc.lookupErr).Once()
			} else {
				users.On("GetByEmail", ctx, "nico@example.com").Return(account, nil).Once()
				hasher.On("Compare", "hashed", "secret").Return(tc.compareErr).Once()
			}
			if tc.wantToken != "" {
				issuer.On("Issue", mustCaller(t, 7, user.Owner)).Return(tc.wantToken, nil).Once()
			}

			factory := new(MockAccountUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewLoginCommandHandler(factory, hasher, issuer)
			token, handleErr := handler.Handle(ctx, cmd)

			if tc.wantToken != "" {
				require.NoError(t, handleErr)
				assert.Equal(t, tc.wantToken, token)
				return
			}
			var notFound *errs.ObjectNotFoundError
			require.ErrorAs(t, handleErr, &notFound)
			assert.Equal(t, "User not found", notFound.Reason())
			issuer.AssertNotCalled(t, "Issue", mock.Anything)
		})
	}
}

func TestEditProfileCommandHandler_Handle_ChangeEmailAndPassword(t *testing.T) {
	ctx := t.Context()
	caller := mustCaller(t, 7, user.Client)
	cmd, err := commands.NewEditProfileCommand(caller, ptr("new@example.com"), ptr("better"))
	require.NoError(t, err)

	account, err := user.RestoreUser(7, "old@example.com", "hashed", user.Client, true)
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUoW)
	hasher := new(MockPasswordHasher)
	mailer := new(MockMailer)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", ctx, kernel.ID(7)).Return(account, nil).Once(),
		users.On("ExistsByEmail", ctx, "new@example.com").Return(false, nil).Once(),
		hasher.On("Hash", "better").Return("rehashed", nil).Once(),
		users.On("Update", ctx, account).Return(nil).Once(),
		users.On("AddVerification", ctx, mock.AnythingOfType("user.Verification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		mailer.On("SendVerification", ctx, "new@example.com", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEditProfileCommandHandler(factory, hasher, mailer, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, "new@example.com", account.Email())
	assert.Equal(t, "rehashed", account.PasswordHash())
	assert.False(t, account.Verified())
	users.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestEditProfileCommandHandler_Handle_SameEmailKeepsVerification(t *testing.T) {
	ctx := t.Context()
	caller := mustCaller(t, 7, user.Client)
	cmd, err := commands.NewEditProfileCommand(caller, ptr("OLD@example.com"), nil)
	require.NoError(t, err)

	account, err := user.RestoreUser(7, "old@example.com", "hashed", user.Client, true)
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUoW)
	mailer := new(MockMailer)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	users.On("Get", ctx, kernel.ID(7)).Return(account, nil).Once()
	users.On("Update", ctx, account).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEditProfileCommandHandler(factory, new(MockPasswordHasher), mailer, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, account.Verified())
	mailer.AssertNotCalled(t, "SendVerification", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyEmailCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	code := kernel.NewToken()
	cmd, err := commands.NewVerifyEmailCommand(code.String())
	require.NoError(t, err)

	verification, err := user.RestoreVerification(code, 7)
	require.NoError(t, err)
	account, err := user.RestoreUser(7, "nico@example.com", "hashed", user.Client, false)
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("GetVerification", ctx, code).Return(verification, nil).Once(),
		users.On("Get", ctx, kernel.ID(7)).Return(account, nil).Once(),
		users.On("Update", ctx, account).Return(nil).Once(),
		users.On("DeleteVerification", ctx, code).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyEmailCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, account.Verified())
	users.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestVerifyEmailCommandHandler_Handle_UnknownCode(t *testing.T) {
	ctx := t.Context()
	code := kernel.NewToken()
	cmd, err := commands.NewVerifyEmailCommand(code.String())
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	users.On("GetVerification", ctx, code).
		Return(user.Verification{}, errs.NewObjectNotFoundError("verification", code.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewVerifyEmailCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewVerifyEmailCommand_InvalidCode(t *testing.T) {
	_, err := commands.NewVerifyEmailCommand("not-a-code")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

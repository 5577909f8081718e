package commands

import (
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// CreateAccountCommand registers a new user account.
//
// Example:
//
//	cmd, err := NewCreateAccountCommand("owner@example.com", "secret", user.Owner)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewCreateAccountCommand(email, password string, role user.Role) (CreateAccountCommand, error) {
	cmd := CreateAccountCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return CreateAccountCommand{}, err
	}

	return cmd, nil
}

func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

func (c CreateAccountCommand) Email() string {
	return c.email
}

func (c CreateAccountCommand) Password() string {
	return c.password
}

func (c CreateAccountCommand) Role() user.Role {
	return c.role
}

func (c *CreateAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateAccountCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *CreateAccountCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

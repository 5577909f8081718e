package commands

import (
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrEditProfileCommandIsNotConstructed = errors.New(
	"EditProfileCommand must be created via NewEditProfileCommand constructor",
)

// EditProfileCommand changes the caller's email and/or password. A nil field
// is left unchanged.
type EditProfileCommand struct { //nolint:recvcheck //using for validation
	caller   user.Caller
	email    *string
	password *string

	guard guard.ConstructorGuard
}

func NewEditProfileCommand(caller user.Caller, email, password *string) (EditProfileCommand, error) {
	cmd := EditProfileCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return EditProfileCommand{}, err
	}

	return cmd, nil
}

func (c EditProfileCommand) Validate() error {
	return c.guard.Validate(ErrEditProfileCommandIsNotConstructed)
}

func (c EditProfileCommand) Caller() user.Caller {
	return c.caller
}

func (c EditProfileCommand) Email() (string, bool) {
	return valueOf(c.email)
}

func (c EditProfileCommand) Password() (string, bool) {
	return valueOf(c.password)
}

func (c *EditProfileCommand) setCaller(caller user.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *EditProfileCommand) setEmail(email *string) error {
	if email == nil {
		return nil
	}
	if *email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = optional(email)
	return nil
}

func (c *EditProfileCommand) setPassword(password *string) error {
	if password == nil {
		return nil
	}
	if *password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = optional(password)
	return nil
}

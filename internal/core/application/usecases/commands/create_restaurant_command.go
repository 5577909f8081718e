package commands

import (
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand opens a restaurant owned by the caller. The
// category is resolved by name and created on first use.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	caller       user.Caller
	name         string
	address      string
	coverImg     string
	categoryName string

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	caller user.Caller,
	name, address, coverImg, categoryName string,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		name:     name,
		address:  address,
		coverImg: coverImg,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setCategoryName(categoryName),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) Caller() user.Caller {
	return c.caller
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c CreateRestaurantCommand) Address() string {
	return c.address
}

func (c CreateRestaurantCommand) CoverImg() string {
	return c.coverImg
}

func (c CreateRestaurantCommand) CategoryName() string {
	return c.categoryName
}

func (c *CreateRestaurantCommand) setCaller(caller user.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateRestaurantCommand) setCategoryName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("categoryName")
	}
	c.categoryName = name
	return nil
}

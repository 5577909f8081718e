package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// DishInput carries the fields of a new dish.
type DishInput struct {
	Name        string
	Price       int
	Description string
	Photo       string
	Options     []restaurant.DishOption
}

// CreateDishCommand adds a dish to the menu of a restaurant owned by the caller.
type CreateDishCommand struct {
	caller       user.Caller
	restaurantID kernel.ID
	dish         DishInput

	guard guard.ConstructorGuard
}

func NewCreateDishCommand(caller user.Caller, restaurantID kernel.ID, dish DishInput) (CreateDishCommand, error) {
	if err := errors.Join(caller.Validate(), restaurantID.Validate()); err != nil {
		return CreateDishCommand{}, err
	}
	dish.Options = append([]restaurant.DishOption(nil), dish.Options...)
	return CreateDishCommand{
		caller:       caller,
		restaurantID: restaurantID,
		dish:         dish,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) Caller() user.Caller {
	return c.caller
}

func (c CreateDishCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

func (c CreateDishCommand) Dish() DishInput {
	return c.dish
}

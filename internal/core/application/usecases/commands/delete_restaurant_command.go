package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

// DeleteRestaurantCommand removes a restaurant owned by the caller.
type DeleteRestaurantCommand struct {
	caller       user.Caller
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteRestaurantCommand(caller user.Caller, restaurantID kernel.ID) (DeleteRestaurantCommand, error) {
	if err := errors.Join(caller.Validate(), restaurantID.Validate()); err != nil {
		return DeleteRestaurantCommand{}, err
	}
	return DeleteRestaurantCommand{
		caller:       caller,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

func (c DeleteRestaurantCommand) Caller() user.Caller {
	return c.caller
}

func (c DeleteRestaurantCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

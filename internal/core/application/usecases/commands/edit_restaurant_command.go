package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrEditRestaurantCommandIsNotConstructed = errors.New(
	"EditRestaurantCommand must be created via NewEditRestaurantCommand constructor",
)

// RestaurantChanges lists the restaurant fields to change; nil fields are kept.
type RestaurantChanges struct {
	Name         *string
	Address      *string
	CoverImg     *string
	CategoryName *string
}

// EditRestaurantCommand changes a restaurant owned by the caller.
type EditRestaurantCommand struct { //nolint:recvcheck //using for validation
	caller       user.Caller
	restaurantID kernel.ID
	changes      RestaurantChanges

	guard guard.ConstructorGuard
}

func NewEditRestaurantCommand(
	caller user.Caller,
	restaurantID kernel.ID,
	changes RestaurantChanges,
) (EditRestaurantCommand, error) {
	if err := errors.Join(caller.Validate(), restaurantID.Validate()); err != nil {
		return EditRestaurantCommand{}, err
	}

	return EditRestaurantCommand{
		caller:       caller,
		restaurantID: restaurantID,
		changes: RestaurantChanges{
			Name:         optional(changes.Name),
			Address:      optional(changes.Address),
			CoverImg:     optional(changes.CoverImg),
			CategoryName: optional(changes.CategoryName),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c EditRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrEditRestaurantCommandIsNotConstructed)
}

func (c EditRestaurantCommand) Caller() user.Caller {
	return c.caller
}

func (c EditRestaurantCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

func (c EditRestaurantCommand) Changes() RestaurantChanges {
	return c.changes
}

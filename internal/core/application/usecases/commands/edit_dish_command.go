package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrEditDishCommandIsNotConstructed = errors.New(
	"EditDishCommand must be created via NewEditDishCommand constructor",
)

// DishChanges lists the dish fields to change; nil fields are kept. A
// non-nil Options replaces all options.
type DishChanges struct {
	Name        *string
	Price       *int
	Description *string
	Photo       *string
	Options     *[]restaurant.DishOption
}

type EditDishCommand struct {
	caller  user.Caller
	dishID  kernel.ID
	changes DishChanges

	guard guard.ConstructorGuard
}

func NewEditDishCommand(caller user.Caller, dishID kernel.ID, changes DishChanges) (EditDishCommand, error) {
	if err := errors.Join(caller.Validate(), dishID.Validate()); err != nil {
		return EditDishCommand{}, err
	}

	copied := DishChanges{
		Name:        optional(changes.Name),
		Price:       optional(changes.Price),
		Description: optional(changes.Description),
		Photo:       optional(changes.Photo),
	}
	if changes.Options != nil {
		options := append([]restaurant.DishOption(nil), (*changes.Options)...)
		copied.Options = &options
	}

	return EditDishCommand{
		caller:  caller,
		dishID:  dishID,
		changes: copied,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c EditDishCommand) Validate() error {
	return c.guard.Validate(ErrEditDishCommandIsNotConstructed)
}

func (c EditDishCommand) Caller() user.Caller {
	return c.caller
}

func (c EditDishCommand) DishID() kernel.ID {
	return c.dishID
}

func (c EditDishCommand) Changes() DishChanges {
	return c.changes
}

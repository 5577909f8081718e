package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrDeleteDishCommandIsNotConstructed = errors.New(
	"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
)

type DeleteDishCommand struct {
	caller user.Caller
	dishID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteDishCommand(caller user.Caller, dishID kernel.ID) (DeleteDishCommand, error) {
	if err := errors.Join(caller.Validate(), dishID.Validate()); err != nil {
		return DeleteDishCommand{}, err
	}
	return DeleteDishCommand{caller: caller, dishID: dishID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

func (c DeleteDishCommand) Caller() user.Caller {
	return c.caller
}

func (c DeleteDishCommand) DishID() kernel.ID {
	return c.dishID
}

package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand assigns the calling driver to an order.
type TakeOrderCommand struct {
	caller  user.Caller
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewTakeOrderCommand(caller user.Caller, orderID kernel.ID) (TakeOrderCommand, error) {
	if err := errors.Join(caller.Validate(), orderID.Validate()); err != nil {
		return TakeOrderCommand{}, err
	}
	return TakeOrderCommand{caller: caller, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

func (c TakeOrderCommand) Caller() user.Caller {
	return c.caller
}

func (c TakeOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand moves an order to a new status.
type EditOrderCommand struct {
	caller  user.Caller
	orderID kernel.ID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(caller user.Caller, orderID kernel.ID, status order.Status) (EditOrderCommand, error) {
	if err := errors.Join(caller.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return EditOrderCommand{}, err
	}
	return EditOrderCommand{
		caller:  caller,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) Caller() user.Caller {
	return c.caller
}

func (c EditOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c EditOrderCommand) Status() order.Status {
	return c.status
}

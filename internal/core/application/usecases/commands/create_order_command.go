package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order at one restaurant on behalf of a client.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(caller, restaurantID, []order.Selection{
//	    {DishID: 7, Options: []order.ItemOption{{Name: "Spice", Choice: "Hot"}}},
//	})
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller       user.Caller
	restaurantID kernel.ID
	selections   []order.Selection

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	caller user.Caller,
	restaurantID kernel.ID,
	selections []order.Selection,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setRestaurantID(restaurantID),
		cmd.setSelections(selections),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Caller() user.Caller {
	return c.caller
}

func (c CreateOrderCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Selections returns a copy of the requested items.
func (c CreateOrderCommand) Selections() []order.Selection {
	return copySelections(c.selections)
}

func (c *CreateOrderCommand) setCaller(caller user.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setSelections(selections []order.Selection) error {
	if len(selections) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, s := range selections {
		if err := s.DishID.Validate(); err != nil {
			return err
		}
	}
	c.selections = copySelections(selections)
	return nil
}

func copySelections(selections []order.Selection) []order.Selection {
	copied := make([]order.Selection, len(selections))
	for i, s := range selections {
		copied[i] = order.Selection{
			DishID:  s.DishID,
			Options: append([]order.ItemOption(nil), s.Options...),
		}
	}
	return copied
}

package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand records a promotion payment for a restaurant owned by
// the caller.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	caller        user.Caller
	transactionID string
	restaurantID  kernel.ID

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(caller user.Caller, transactionID string, restaurantID kernel.ID) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		caller.Validate(),
		cmd.setTransactionID(transactionID),
		restaurantID.Validate(),
	); err != nil {
		return CreatePaymentCommand{}, err
	}
	cmd.caller = caller
	cmd.restaurantID = restaurantID

	return cmd, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) Caller() user.Caller {
	return c.caller
}

func (c CreatePaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c CreatePaymentCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

func (c *CreatePaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}
	c.transactionID = transactionID
	return nil
}

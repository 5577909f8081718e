package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// ReasonCannotSeeOrder is reported when the caller takes no part in the order.
const ReasonCannotSeeOrder = "You can't see order"

// GetOrderQuery reads one order the caller is allowed to view.
type GetOrderQuery struct {
	caller  user.Caller
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(caller user.Caller, orderID kernel.ID) (GetOrderQuery, error) {
	if err := errors.Join(caller.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{caller: caller, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Caller() user.Caller {
	return q.caller
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

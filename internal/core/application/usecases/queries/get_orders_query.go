package queries

import (
	"errors"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the orders the caller takes part in: a client sees
// the orders it placed, a driver the orders it delivers and an owner the
// orders of its restaurants. An optional status narrows the list.
//
// Example:
//
//	cooked := order.Cooked
//	query, err := NewGetOrdersQuery(caller, &cooked)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	caller user.Caller
	status *order.Status

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(caller user.Caller, status *order.Status) (GetOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	query := GetOrdersQuery{caller: caller, guard: guard.NewConstructorGuard()}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		s := *status
		query.status = &s
	}

	return query, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Caller() user.Caller {
	return q.caller
}

// Status returns the requested status filter, if any.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

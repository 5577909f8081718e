package queries

import (
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetPaymentsQueryIsNotConstructed = errors.New(
	"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
)

// GetPaymentsQuery lists the promotion payments made by the caller.
type GetPaymentsQuery struct {
	caller user.Caller

	guard guard.ConstructorGuard
}

func NewGetPaymentsQuery(caller user.Caller) (GetPaymentsQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetPaymentsQuery{}, err
	}
	return GetPaymentsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

func (q GetPaymentsQuery) Caller() user.Caller {
	return q.caller
}

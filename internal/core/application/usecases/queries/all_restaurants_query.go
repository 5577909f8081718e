package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrAllRestaurantsQueryIsNotConstructed = errors.New(
	"AllRestaurantsQuery must be created via NewAllRestaurantsQuery constructor",
)

// AllRestaurantsQuery reads one page of every restaurant.
type AllRestaurantsQuery struct {
	page kernel.Page

	guard guard.ConstructorGuard
}

func NewAllRestaurantsQuery(page kernel.Page) (AllRestaurantsQuery, error) {
	if err := validatePage(page); err != nil {
		return AllRestaurantsQuery{}, err
	}
	return AllRestaurantsQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q AllRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrAllRestaurantsQueryIsNotConstructed)
}

func (q AllRestaurantsQuery) Page() kernel.Page {
	return q.page
}

func validatePage(page kernel.Page) error {
	if page.Number() < 1 {
		return errs.NewValueIsRequiredError("page")
	}
	return nil
}

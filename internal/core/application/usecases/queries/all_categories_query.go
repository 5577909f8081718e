package queries

import (
	"errors"

	"eats/internal/pkg/guard"
)

var ErrAllCategoriesQueryIsNotConstructed = errors.New(
	"AllCategoriesQuery must be created via NewAllCategoriesQuery constructor",
)

// AllCategoriesQuery lists every category with the number of restaurants in it.
type AllCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewAllCategoriesQuery() AllCategoriesQuery {
	return AllCategoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q AllCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrAllCategoriesQueryIsNotConstructed)
}

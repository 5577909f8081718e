package queries

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrSearchRestaurantsQueryIsNotConstructed = errors.New(
	"SearchRestaurantsQuery must be created via NewSearchRestaurantsQuery constructor",
)

// SearchRestaurantsQuery finds restaurants whose name contains the term,
// ignoring case.
type SearchRestaurantsQuery struct {
	term string
	page kernel.Page

	guard guard.ConstructorGuard
}

func NewSearchRestaurantsQuery(term string, page kernel.Page) (SearchRestaurantsQuery, error) {
	term = strings.TrimSpace(term)

	var errTerm error
	if term == "" {
		errTerm = errs.NewValueIsRequiredError("query")
	}
	if err := errors.Join(errTerm, validatePage(page)); err != nil {
		return SearchRestaurantsQuery{}, err
	}

	return SearchRestaurantsQuery{term: term, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrSearchRestaurantsQueryIsNotConstructed)
}

func (q SearchRestaurantsQuery) Term() string {
	return q.term
}

func (q SearchRestaurantsQuery) Page() kernel.Page {
	return q.page
}

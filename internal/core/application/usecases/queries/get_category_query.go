package queries

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrGetCategoryQueryIsNotConstructed = errors.New(
	"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
)

// GetCategoryQuery reads a category by slug with one page of its restaurants.
type GetCategoryQuery struct {
	slug string
	page kernel.Page

	guard guard.ConstructorGuard
}

func NewGetCategoryQuery(slug string, page kernel.Page) (GetCategoryQuery, error) {
	slug = strings.TrimSpace(slug)

	var errSlug error
	if slug == "" {
		errSlug = errs.NewValueIsRequiredError("slug")
	}
	if err := errors.Join(errSlug, validatePage(page)); err != nil {
		return GetCategoryQuery{}, err
	}

	return GetCategoryQuery{slug: slug, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

func (q GetCategoryQuery) Slug() string {
	return q.slug
}

func (q GetCategoryQuery) Page() kernel.Page {
	return q.page
}

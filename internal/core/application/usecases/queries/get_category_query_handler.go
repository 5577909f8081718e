package queries

import (
	"context"

	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCategoryQueryHandler struct {
	db *gorm.DB
}

func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db}
}

func (h GetCategoryQueryHandler) Handle(ctx context.Context, query GetCategoryQuery) (CategoryDetailsView, error) {
	if err := query.Validate(); err != nil {
		return CategoryDetailsView{}, err
	}

	categories, err := scanCategories(h.db.WithContext(ctx).Raw(categorySelect+" WHERE c.slug = ?", query.Slug()))
	if err != nil {
		return CategoryDetailsView{}, err
	}
	if len(categories) == 0 {
		return CategoryDetailsView{}, errs.NewObjectNotFoundError("category", query.Slug())
	}

	page, err := listRestaurants(ctx, h.db, query.Page(), "r.category_id = ?", categories[0].ID)
	if err != nil {
		return CategoryDetailsView{}, err
	}

	return CategoryDetailsView{Category: categories[0], RestaurantsPage: page}, nil
}

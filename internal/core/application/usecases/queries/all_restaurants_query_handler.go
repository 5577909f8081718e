package queries

import (
	"context"

	"gorm.io/gorm"
)

type AllRestaurantsQueryHandler struct {
	db *gorm.DB
}

func NewAllRestaurantsQueryHandler(db *gorm.DB) AllRestaurantsQueryHandler {
	return AllRestaurantsQueryHandler{db: db}
}

func (h AllRestaurantsQueryHandler) Handle(ctx context.Context, query AllRestaurantsQuery) (RestaurantsPage, error) {
	if err := query.Validate(); err != nil {
		return RestaurantsPage{}, err
	}
	return listRestaurants(ctx, h.db, query.Page(), "1 = 1")
}

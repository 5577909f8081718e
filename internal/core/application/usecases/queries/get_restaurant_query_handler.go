package queries

import (
	"context"

	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (RestaurantDetailsView, error) {
	if err := query.Validate(); err != nil {
		return RestaurantDetailsView{}, err
	}

	id := query.RestaurantID().Uint()
	restaurants, err := scanRestaurants(h.db.WithContext(ctx).Raw(restaurantSelect+" WHERE r.id = ?", id))
	if err != nil {
		return RestaurantDetailsView{}, err
	}
	if len(restaurants) == 0 {
		return RestaurantDetailsView{}, errs.NewObjectNotFoundError("restaurant", query.RestaurantID())
	}

	menu, err := loadMenu(ctx, h.db, id)
	if err != nil {
		return RestaurantDetailsView{}, err
	}

	return RestaurantDetailsView{RestaurantView: restaurants[0], Menu: menu}, nil
}

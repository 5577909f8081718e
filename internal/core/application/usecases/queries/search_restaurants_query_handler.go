package queries

import (
	"context"

	"gorm.io/gorm"
)

type SearchRestaurantsQueryHandler struct {
	db *gorm.DB
}

func NewSearchRestaurantsQueryHandler(db *gorm.DB) SearchRestaurantsQueryHandler {
	return SearchRestaurantsQueryHandler{db: db}
}

// Handle matches with LOWER on both sides so it behaves the same on
// PostgreSQL and SQLite.
func (h SearchRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query SearchRestaurantsQuery,
) (RestaurantsPage, error) {
	if err := query.Validate(); err != nil {
		return RestaurantsPage{}, err
	}
	return listRestaurants(ctx, h.db, query.Page(), "LOWER(r.name) LIKE LOWER(?)", "%"+query.Term()+"%")
}

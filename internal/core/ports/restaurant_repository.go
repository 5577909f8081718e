package ports

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update writes the catalog fields and leaves the promotion untouched.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// UpdatePromotion writes the promotion while the stored end is still
	// previous, otherwise it fails with a ConflictError.
	UpdatePromotion(ctx context.Context, aggregate *restaurant.Restaurant, previous *time.Time) error

	// Delete removes the restaurant together with its dishes.
	Delete(ctx context.Context, id kernel.ID) error

	// Get returns the restaurant or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)

	// ExpirePromotions un-promotes every restaurant whose promotion ended
	// before now and returns how many it changed.
	ExpirePromotions(ctx context.Context, now time.Time) (int, error)
}

// CategoryRepository defines the persistence contract for restaurant categories.
type CategoryRepository interface {
	// GetOrCreate returns the stored category with the same slug, creating
	// it from category when none exists yet.
	GetOrCreate(ctx context.Context, category restaurant.Category) (restaurant.Category, error)
}

// DishRepository defines the persistence contract for menu dishes.
type DishRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Dish) error
	Update(ctx context.Context, aggregate *restaurant.Dish) error
	Delete(ctx context.Context, id kernel.ID) error

	// Get returns the dish or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Dish, error)

	// GetAllByRestaurant returns the menu of a restaurant.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*restaurant.Dish, error)
}

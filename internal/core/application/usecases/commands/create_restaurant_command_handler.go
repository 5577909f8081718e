package commands

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler stores a new restaurant and returns its ID.
type CreateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateRestaurantCommandHandler(uowFactory CatalogUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, command CreateRestaurantCommand) (kernel.ID, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	category, err := resolveCategory(ctx, uow, command.CategoryName())
	if err != nil {
		return 0, err
	}
	categoryID := category.ID()

	r, err := restaurant.NewRestaurant(
		command.Name(),
		command.Address(),
		command.CoverImg(),
		command.Caller().ID(),
		&categoryID,
	)
	if err != nil {
		return 0, err
	}

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return r.ID(), nil
}

func resolveCategory(ctx context.Context, uow CategoryRepoFactory, name string) (restaurant.Category, error) {
	category, err := restaurant.NewCategory(name)
	if err != nil {
		return restaurant.Category{}, err
	}
	return uow.CategoryRepository().GetOrCreate(ctx, category)
}

package commands

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// CreateDishCommandHandler stores a new dish and returns its ID.
type CreateDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateDishCommandHandler(uowFactory CatalogUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{uowFactory: uowFactory}
}

func (h CreateDishCommandHandler) Handle(ctx context.Context, command CreateDishCommand) (kernel.ID, error) {
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

	r, err := getOwnedRestaurant(ctx, uow.RestaurantRepository(), command.Caller(), command.RestaurantID(), ReasonCannotDoThat)
	if err != nil {
		return 0, err
	}

	input := command.Dish()
	dish, err := restaurant.NewDish(r.ID(), input.Name, input.Price, input.Description, input.Photo, input.Options)
	if err != nil {
		return 0, err
	}

	if err = uow.DishRepository().Add(ctx, dish); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return dish.ID(), nil
}

package commands

import (
	"context"
)

type DeleteRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteRestaurantCommandHandler(uowFactory CatalogUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle removes the restaurant and its menu when the caller owns it.
func (h DeleteRestaurantCommandHandler) Handle(ctx context.Context, command DeleteRestaurantCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurants := uow.RestaurantRepository()

	r, err := getOwnedRestaurant(ctx, restaurants, command.Caller(), command.RestaurantID(), ReasonNotRestaurantOwner)
	if err != nil {
		return err
	}

	if err = restaurants.Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

type DeleteDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteDishCommandHandler(uowFactory CatalogUoWFactory) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{uowFactory: uowFactory}
}

// Handle removes the dish when the caller owns its restaurant. Past orders
// keep their item snapshots.
func (h DeleteDishCommandHandler) Handle(ctx context.Context, command DeleteDishCommand) error {
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

	dishes := uow.DishRepository()

	dish, err := dishes.Get(ctx, command.DishID())
	if err != nil {
		return err
	}

	if _, err = getOwnedRestaurant(ctx, uow.RestaurantRepository(), command.Caller(), dish.RestaurantID(), ReasonCannotDoThat); err != nil {
		return err
	}

	if err = dishes.Delete(ctx, dish.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

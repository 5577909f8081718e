package commands

import (
	"context"
	"errors"
)

// EditDishCommandHandler applies dish changes for the owner of the dish's
// restaurant.
type EditDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewEditDishCommandHandler(uowFactory CatalogUoWFactory) EditDishCommandHandler {
	return EditDishCommandHandler{uowFactory: uowFactory}
}

func (h EditDishCommandHandler) Handle(ctx context.Context, command EditDishCommand) error {
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

	changes := command.Changes()
	var changeErrs []error
	if changes.Name != nil {
		changeErrs = append(changeErrs, dish.Rename(*changes.Name))
	}
	if changes.Price != nil {
		changeErrs = append(changeErrs, dish.ChangePrice(*changes.Price))
	}
	if changes.Description != nil {
		changeErrs = append(changeErrs, dish.ChangeDescription(*changes.Description))
	}
	if changes.Photo != nil {
		dish.ChangePhoto(*changes.Photo)
	}
	if changes.Options != nil {
		changeErrs = append(changeErrs, dish.ReplaceOptions(*changes.Options))
	}
	if err = errors.Join(changeErrs...); err != nil {
		return err
	}

	if err = dishes.Update(ctx, dish); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

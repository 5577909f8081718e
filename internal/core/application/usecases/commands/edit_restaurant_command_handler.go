package commands

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// EditRestaurantCommandHandler applies restaurant changes for its owner.
type EditRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewEditRestaurantCommandHandler(uowFactory CatalogUoWFactory) EditRestaurantCommandHandler {
	return EditRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle fails with an ObjectNotFoundError for an unknown restaurant and a
// ForbiddenError when the caller does not own it.
func (h EditRestaurantCommandHandler) Handle(ctx context.Context, command EditRestaurantCommand) error {
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

	changes := command.Changes()
	var changeErrs []error
	if changes.Name != nil {
		changeErrs = append(changeErrs, r.Rename(*changes.Name))
	}
	if changes.Address != nil {
		changeErrs = append(changeErrs, r.ChangeAddress(*changes.Address))
	}
	if changes.CoverImg != nil {
		changeErrs = append(changeErrs, r.ChangeCoverImg(*changes.CoverImg))
	}
	if err = errors.Join(changeErrs...); err != nil {
		return err
	}

	if changes.CategoryName != nil {
		category, categoryErr := resolveCategory(ctx, uow, *changes.CategoryName)
		if categoryErr != nil {
			return categoryErr
		}
		categoryID := category.ID()
		if err = r.ChangeCategory(&categoryID); err != nil {
			return err
		}
	}

	if err = restaurants.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// getOwnedRestaurant loads a restaurant and declines with reason unless
// caller owns it.
func getOwnedRestaurant(
	ctx context.Context,
	restaurants ports.RestaurantRepository,
	caller user.Caller,
	id kernel.ID,
	reason string,
) (*restaurant.Restaurant, error) {
	r, err := restaurants.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.IsOwnedBy(caller.ID()) {
		return nil, errs.NewForbiddenError(reason)
	}
	return r, nil
}

package commands

import (
	"context"
)

// ExpirePromotionsCommandHandler un-promotes restaurants whose promotion
// ended. The repository does it in one conditional write, so a promotion
// renewed meanwhile is kept. Running it again with the same time changes
// nothing.
type ExpirePromotionsCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewExpirePromotionsCommandHandler(uowFactory PaymentUoWFactory) ExpirePromotionsCommandHandler {
	return ExpirePromotionsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of restaurants whose promotion ended.
func (h ExpirePromotionsCommandHandler) Handle(ctx context.Context, command ExpirePromotionsCommand) (int, error) {
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

	count, err := uow.RestaurantRepository().ExpirePromotions(ctx, command.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}

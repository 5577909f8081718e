package commands

import (
	"context"
	"time"

	"eats/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler promotes the restaurant for a fixed number of
// days from now and records the payment.
type CreatePaymentCommandHandler struct {
	uowFactory    PaymentUoWFactory
	promotionDays int
}

func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory, promotionDays int) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory:    uowFactory,
		promotionDays: promotionDays,
	}
}

func (h CreatePaymentCommandHandler) Handle(ctx context.Context, command CreatePaymentCommand) error {
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

	previous := r.PromotedUntil()
	now := time.Now().UTC()
	if err = r.Promote(now, h.promotionDays); err != nil {
		return err
	}

	if err = restaurants.UpdatePromotion(ctx, r, previous); err != nil {
		return err
	}

	p, err := payment.NewPayment(command.TransactionID(), command.Caller().ID(), r.ID(), now)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

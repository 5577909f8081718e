package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
)

// TakeOrderCommandHandler assigns a driver to an order. The repository write
// is a compare-and-set on an empty driver, so of two drivers racing for the
// same order exactly one succeeds and the other gets a ConflictError.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	bus        ports.EventBus
	notifier   services.OrderNotifier
	logger     *slog.Logger
}

func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory, bus ports.EventBus, logger *slog.Logger) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
		notifier:   services.NewOrderNotifier(),
		logger:     logger.With("component", "take_order"),
	}
}

func (h TakeOrderCommandHandler) Handle(ctx context.Context, command TakeOrderCommand) error {
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

	orders := uow.OrderRepository()

	o, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignDriver(command.Caller().ID()); err != nil {
		return err
	}

	if err = orders.AssignDriver(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishAll(ctx, h.bus, h.logger, h.notifier.DriverAssigned(o))
	return nil
}

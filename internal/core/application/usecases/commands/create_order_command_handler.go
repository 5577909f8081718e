package commands

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
)

// CreateOrderCommandHandler prices the requested items against the
// restaurant menu, stores the order as Pending and notifies the restaurant
// owner.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	bus        ports.EventBus
	pricer     services.OrderPricer
	notifier   services.OrderNotifier
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	bus ports.EventBus,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
		pricer:     services.NewOrderPricer(),
		notifier:   services.NewOrderNotifier(),
		logger:     logger.With("component", "create_order"),
	}
}

// Handle returns the new order ID. It fails with an ObjectNotFoundError when
// the restaurant is unknown or a dish is not on its menu.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (kernel.ID, error) {
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

	r, err := uow.RestaurantRepository().Get(ctx, command.RestaurantID())
	if err != nil {
		return 0, err
	}

	dishes, err := uow.DishRepository().GetAllByRestaurant(ctx, r.ID())
	if err != nil {
		return 0, err
	}

	items, total, err := h.pricer.PriceItems(services.NewMenu(dishes), command.Selections())
	if err != nil {
		return 0, err
	}

	o, err := order.NewOrder(command.Caller().ID(), r.ID(), r.OwnerID(), items, total, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	publishAll(ctx, h.bus, h.logger, h.notifier.OrderCreated(o))
	return o.ID(), nil
}

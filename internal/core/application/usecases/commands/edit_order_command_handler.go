package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// EditOrderCommandHandler changes an order status when the access policy
// allows it and notifies participants after commit.
//
// Checks, in order:
//   - the order exists ("Order not found")
//   - the caller may view it ("You can't edit order")
//   - the caller's role may set the status ("You can't do that")
//
// The status write only applies if nobody changed the status in between;
// otherwise the handler fails with a ConflictError.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	bus        ports.EventBus
	notifier   services.OrderNotifier
	logger     *slog.Logger
}

func NewEditOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderAccessPolicy,
	bus ports.EventBus,
	logger *slog.Logger,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		bus:        bus,
		notifier:   services.NewOrderNotifier(),
		logger:     logger.With("component", "edit_order"),
	}
}

func (h EditOrderCommandHandler) Handle(ctx context.Context, command EditOrderCommand) error {
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

	caller := command.Caller()
	if !h.policy.CanView(caller, o) {
		return errs.NewForbiddenError(ReasonCannotEditOrder)
	}
	if !h.policy.CanTransition(caller, o, command.Status()) {
		return errs.NewForbiddenError(ReasonCannotDoThat)
	}

	previous := o.Status()
	if err = o.ChangeStatus(command.Status()); err != nil {
		return err
	}

	if err = orders.UpdateStatus(ctx, o, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishAll(ctx, h.bus, h.logger, h.notifier.OrderStatusChanged(o))
	return nil
}

package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/event"
	"eats/internal/core/ports"
)

// publishAll hands committed order changes to the bus. The change is already
// durable at this point, so a failed publish is logged and not returned.
func publishAll(ctx context.Context, bus ports.EventBus, logger *slog.Logger, messages []event.Message) {
	for _, msg := range messages {
		if err := bus.Publish(ctx, msg); err != nil {
			logger.ErrorContext(ctx, "Failed to publish order event",
				"channel", msg.Channel,
				"order_id", msg.Order.ID,
				"error", err,
			)
		}
	}
}

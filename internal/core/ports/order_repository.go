package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Status and driver changes are conditional writes: each one only applies
// when the stored row still matches what the caller decided on, and reports
// a ConflictError otherwise.
type OrderRepository interface {
	// Add persists a new order with its items and assigns their identities.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its items or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// UpdateStatus stores the aggregate status if the stored status still
	// equals expected.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// AssignDriver stores the aggregate driver if the stored order has none.
	// Losing the race yields a ConflictError carrying
	// order.ReasonDriverAlreadyAssigned.
	AssignDriver(ctx context.Context, aggregate *order.Order) error
}

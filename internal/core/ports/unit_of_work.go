package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	RestaurantRepository() RestaurantRepository
	CategoryRepository() CategoryRepository
	DishRepository() DishRepository
	OrderRepository() OrderRepository
	PaymentRepository() PaymentRepository
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"eats/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// AccountUoW manages transactions for account operations.
	AccountUoW interface {
		TxManager
		UserRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// CatalogUoW manages transactions that change restaurants, their
	// categories and their menus.
	CatalogUoW interface {
		TxManager
		RestaurantRepoFactory
		CategoryRepoFactory
		DishRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order operations. Creating an order
	// reads the restaurant and its menu in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   menu, err := uow.DishRepository().GetAllByRestaurant(ctx, restaurantID)
	//   // ... price and build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		RestaurantRepoFactory
		DishRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions that record payments and change
	// restaurant promotion.
	PaymentUoW interface {
		TxManager
		RestaurantRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)

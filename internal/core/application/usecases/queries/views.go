// Package queries contains read operations for retrieving system state.
// Handlers read straight from the database with SQL and return flat read
// models instead of aggregates.
package queries

import (
	"time"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
)

// OrderItemView is a priced dish of an order as it was ordered.
type OrderItemView struct {
	ID       uint
	DishID   uint
	DishName string
	Price    int
	Options  []order.ItemOption
}

// OrderView is an order with its items and the name of its restaurant.
// RestaurantName is empty when the restaurant has since been deleted.
type OrderView struct {
	ID             uint
	CustomerID     uint
	DriverID       *uint
	RestaurantID   uint
	RestaurantName string
	OwnerID        uint
	Total          int
	Status         string
	CreatedAt      time.Time
	Items          []OrderItemView
}

type RestaurantView struct {
	ID            uint
	Name          string
	Address       string
	CoverImg      string
	OwnerID       uint
	CategoryID    *uint
	CategoryName  string
	IsPromoted    bool
	PromotedUntil *time.Time
}

// RestaurantsPage is one page of a restaurant listing.
type RestaurantsPage struct {
	Restaurants  []RestaurantView
	TotalPages   int
	TotalResults int64
}

type DishView struct {
	ID          uint
	Name        string
	Price       int
	Description string
	Photo       string
	Options     []restaurant.DishOption
}

// RestaurantDetailsView is a restaurant with its menu.
type RestaurantDetailsView struct {
	RestaurantView
	Menu []DishView
}

type CategoryView struct {
	ID              uint
	Name            string
	Slug            string
	CoverImg        string
	RestaurantCount int64
}

// CategoryDetailsView is a category with one page of its restaurants.
type CategoryDetailsView struct {
	Category CategoryView
	RestaurantsPage
}

type UserView struct {
	ID       uint
	Email    string
	Role     string
	Verified bool
}

type PaymentView struct {
	ID             uint
	TransactionID  string
	RestaurantID   uint
	RestaurantName string
	CreatedAt      time.Time
}

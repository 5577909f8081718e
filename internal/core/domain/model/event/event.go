// Package event defines the notification channels and payloads published
// when orders change.
//
// Channels are broadcast: every subscriber of a channel receives every
// message and narrows the stream itself. Messages are ephemeral; a subscriber
// never sees messages published before it subscribed.
package event

import (
	"time"

	"eats/internal/core/domain/model/order"
)

// Channel names a notification stream.
type Channel string

const (
	// NewPendingOrder carries freshly placed orders to restaurant owners.
	NewPendingOrder Channel = "NEW_PENDING_ORDER"

	// NewCookedOrder carries orders that became Cooked to every driver.
	NewCookedOrder Channel = "NEW_COOKED_ORDER"

	// NewOrderUpdate carries every status change and driver assignment.
	NewOrderUpdate Channel = "NEW_ORDER_UPDATE"
)

// Channels lists every channel.
func Channels() []Channel {
	return []Channel{NewPendingOrder, NewCookedOrder, NewOrderUpdate}
}

// OrderItem is the published form of an order item.
type OrderItem struct {
	ID       uint               `json:"id"`
	DishID   uint               `json:"dishId"`
	DishName string             `json:"dishName"`
	Price    int                `json:"price"`
	Options  []order.ItemOption `json:"options,omitempty"`
}

// Order is the published snapshot of an order. OwnerID lets owner
// subscribers recognise orders of their restaurants.
type Order struct {
	ID           uint        `json:"id"`
	CustomerID   uint        `json:"customerId"`
	DriverID     *uint       `json:"driverId,omitempty"`
	RestaurantID uint        `json:"restaurantId"`
	OwnerID      uint        `json:"ownerId"`
	Total        int         `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	Items        []OrderItem `json:"items,omitempty"`
}

// Message is one publication on a channel.
type Message struct {
	Channel Channel `json:"channel"`
	Order   Order   `json:"order"`
}

// SnapshotOrder captures the current state of o for publication.
func SnapshotOrder(o *order.Order) Order {
	snapshot := Order{
		ID:           o.ID().Uint(),
		CustomerID:   o.CustomerID().Uint(),
		RestaurantID: o.RestaurantID().Uint(),
		OwnerID:      o.OwnerID().Uint(),
		Total:        o.Total(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
	}
	if driver := o.DriverID(); driver != nil {
		id := driver.Uint()
		snapshot.DriverID = &id
	}
	for _, item := range o.Items() {
		snapshot.Items = append(snapshot.Items, OrderItem{
			ID:       item.ID().Uint(),
			DishID:   item.DishID().Uint(),
			DishName: item.DishName(),
			Price:    item.Price(),
			Options:  item.Options(),
		})
	}
	return snapshot
}

// IsParticipant reports whether userID is the customer, the driver or the
// restaurant owner of the snapshot.
func (o Order) IsParticipant(userID uint) bool {
	if o.CustomerID == userID || o.OwnerID == userID {
		return true
	}
	return o.DriverID != nil && *o.DriverID == userID
}

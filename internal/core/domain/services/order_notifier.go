package services

import (
	"eats/internal/core/domain/model/event"
	"eats/internal/core/domain/model/order"
)

// OrderNotifier maps order changes to channel messages. It only decides
// what to publish; the caller hands the messages to the event bus after the
// change is committed.
type OrderNotifier struct{}

func NewOrderNotifier() OrderNotifier {
	return OrderNotifier{}
}

// OrderCreated publishes a new order to restaurant owners.
func (OrderNotifier) OrderCreated(o *order.Order) []event.Message {
	return []event.Message{
		{Channel: event.NewPendingOrder, Order: event.SnapshotOrder(o)},
	}
}

// OrderStatusChanged always publishes an update. An order that became
// Cooked is also announced to every driver.
func (OrderNotifier) OrderStatusChanged(o *order.Order) []event.Message {
	snapshot := event.SnapshotOrder(o)
	messages := []event.Message{{Channel: event.NewOrderUpdate, Order: snapshot}}
	if o.Status() == order.Cooked {
		messages = append(messages, event.Message{Channel: event.NewCookedOrder, Order: snapshot})
	}
	return messages
}

// DriverAssigned publishes the order with its new driver.
func (OrderNotifier) DriverAssigned(o *order.Order) []event.Message {
	return []event.Message{
		{Channel: event.NewOrderUpdate, Order: event.SnapshotOrder(o)},
	}
}

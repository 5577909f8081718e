package services

import (
	"eats/internal/core/domain/model/event"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
)

// SubscriptionFilter narrows a broadcast channel to the messages one
// subscriber is entitled to.
type SubscriptionFilter struct {
	channel event.Channel
	accept  func(event.Order) bool
}

// PendingOrdersFilter passes new orders of restaurants owned by caller.
func PendingOrdersFilter(caller user.Caller) SubscriptionFilter {
	ownerID := caller.ID().Uint()
	return SubscriptionFilter{
		channel: event.NewPendingOrder,
		accept:  func(o event.Order) bool { return o.OwnerID == ownerID },
	}
}

// CookedOrdersFilter passes every cooked order; the first driver to take
// one wins.
func CookedOrdersFilter() SubscriptionFilter {
	return SubscriptionFilter{
		channel: event.NewCookedOrder,
		accept:  func(event.Order) bool { return true },
	}
}

// OrderUpdatesFilter passes updates of orderID when caller is its customer,
// driver or restaurant owner.
func OrderUpdatesFilter(caller user.Caller, orderID kernel.ID) SubscriptionFilter {
	userID := caller.ID().Uint()
	id := orderID.Uint()
	return SubscriptionFilter{
		channel: event.NewOrderUpdate,
		accept:  func(o event.Order) bool { return o.ID == id && o.IsParticipant(userID) },
	}
}

// Channel returns the channel the filter applies to.
func (f SubscriptionFilter) Channel() event.Channel {
	return f.channel
}

// Accept reports whether msg should be delivered to the subscriber.
func (f SubscriptionFilter) Accept(msg event.Message) bool {
	return msg.Channel == f.channel && f.accept != nil && f.accept(msg.Order)
}

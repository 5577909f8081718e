package ports

import (
	"context"

	"eats/internal/core/domain/model/event"
)

// EventBus carries order notifications from the use cases that change orders
// to live subscribers. Every subscriber connected when a message is
// published receives it, in publish order, unless its subscription ends
// first. There is no replay: a subscriber only sees messages published while
// it is subscribed.
type EventBus interface {
	// Publish hands msg to every current subscriber of msg.Channel.
	Publish(ctx context.Context, msg event.Message) error

	// Subscribe opens a stream of messages published on channel. The stream
	// ends when ctx is done or the subscription is closed.
	Subscribe(ctx context.Context, channel event.Channel) (Subscription, error)
}

// Subscription is a live stream of bus messages. It is not restartable.
type Subscription interface {
	// Events is closed when the subscription ends.
	Events() <-chan event.Message
	Close() error
}

// Package amqp carries order notifications between service instances over
// RabbitMQ. Every channel is a fanout exchange; each instance binds one
// exclusive queue per exchange and hands what it consumes to its local hub.
package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eats/internal/adapters/out/eventbus"
	"eats/internal/core/domain/model/event"
	"eats/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangePrefix namespaces the exchanges of this service.
const ExchangePrefix = "eats."

// ExchangeName returns the fanout exchange for channel.
func ExchangeName(channel event.Channel) string {
	return ExchangePrefix + string(channel)
}

// Bus publishes to RabbitMQ and serves subscriptions from a local hub.
type Bus struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex

	hub    *eventbus.Hub
	logger *slog.Logger
	wg     sync.WaitGroup
}

var _ ports.EventBus = (*Bus)(nil)

// Dial connects, declares the exchanges and starts consuming them.
func Dial(url string, hub *eventbus.Hub, logger *slog.Logger) (*Bus, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	b := &Bus{
		conn:   conn,
		ch:     ch,
		hub:    hub,
		logger: logger.With("component", "AmqpEventBus"),
	}

	for _, channel := range event.Channels() {
		deliveries, err := b.bind(channel)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		b.wg.Add(1)
		go b.forward(channel, deliveries)
	}

	return b, nil
}

func (b *Bus) bind(channel event.Channel) (<-chan amqp.Delivery, error) {
	exchange := ExchangeName(channel)
	if err := b.ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	q, err := b.ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare queue for %s: %w", exchange, err)
	}
	if err = b.ch.QueueBind(q.Name, "", exchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue to %s: %w", exchange, err)
	}
	deliveries, err := b.ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume %s: %w", exchange, err)
	}
	return deliveries, nil
}

func (b *Bus) forward(channel event.Channel, deliveries <-chan amqp.Delivery) {
	defer b.wg.Done()
	for d := range deliveries {
		msg, err := eventbus.Decode(channel, d.Body)
		if err != nil {
			b.logger.Error("Dropping malformed message", "channel", channel, "error", err)
			continue
		}
		if err = b.hub.Publish(context.Background(), msg); err != nil {
			b.logger.Error("Failed to hand message to hub", "channel", channel, "error", err)
		}
	}
}

func (b *Bus) Publish(ctx context.Context, msg event.Message) error {
	body, err := eventbus.Encode(msg)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.ch.PublishWithContext(ctx, ExchangeName(msg.Channel), "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Transient,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
}

func (b *Bus) Subscribe(ctx context.Context, channel event.Channel) (ports.Subscription, error) {
	return b.hub.Subscribe(ctx, channel)
}

// Ping reports whether the broker connection is still open.
func (b *Bus) Ping() error {
	if b.conn == nil || b.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Close stops consuming, closes the connection and ends local subscriptions.
func (b *Bus) Close() error {
	var errList []error
	if b.ch != nil {
		errList = append(errList, b.ch.Close())
	}
	if b.conn != nil && !b.conn.IsClosed() {
		errList = append(errList, b.conn.Close())
	}
	b.wg.Wait()
	errList = append(errList, b.hub.Close())
	return errors.Join(errList...)
}

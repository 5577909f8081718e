// Package pgnotify carries order notifications between service instances
// over PostgreSQL LISTEN/NOTIFY. Publishing runs pg_notify on the
// application database; a lib/pq listener receives every channel and hands
// what it gets to the local hub.
//
// Notifications are not stored: an instance that is disconnected when one is
// sent never sees it, the same as the in-memory hub.
package pgnotify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"eats/internal/adapters/out/eventbus"
	"eats/internal/core/domain/model/event"
	"eats/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	// ChannelPrefix namespaces the notification channels of this service.
	ChannelPrefix = "eats_"

	// MaxPayload is the largest payload NOTIFY accepts with the default
	// server configuration.
	MaxPayload = 7999

	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

var ErrPayloadTooLarge = errors.New("notification payload exceeds NOTIFY limit")

// ChannelName returns the notification channel for channel. Postgres folds
// unquoted identifiers to lower case, so the name is lower-cased here too.
func ChannelName(channel event.Channel) string {
	return ChannelPrefix + strings.ToLower(string(channel))
}

// Bus publishes with NOTIFY and serves subscriptions from a local hub.
type Bus struct {
	db       *gorm.DB
	listener *pq.Listener
	channels map[string]event.Channel

	hub    *eventbus.Hub
	logger *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

var _ ports.EventBus = (*Bus)(nil)

// Dial starts a listener on dsn and subscribes it to every channel. It fails
// when ctx ends before the listener is connected.
func Dial(ctx context.Context, dsn string, db *gorm.DB, hub *eventbus.Hub, logger *slog.Logger) (*Bus, error) {
	if _, err := pq.NewConnector(dsn); err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	b := &Bus{
		db:       db,
		channels: make(map[string]event.Channel),
		hub:      hub,
		logger:   logger.With("component", "PgNotifyEventBus"),
		done:     make(chan struct{}),
	}
	for _, channel := range event.Channels() {
		b.channels[ChannelName(channel)] = channel
	}
	b.listener = pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, b.onListenerEvent)

	listening := make(chan error, 1)
	go func() {
		listening <- b.listenAll()
	}()

	select {
	case err := <-listening:
		if err != nil {
			_ = b.listener.Close()
			return nil, err
		}
	case <-ctx.Done():
		_ = b.listener.Close()
		return nil, fmt.Errorf("wait for postgres listener: %w", ctx.Err())
	}

	b.wg.Add(1)
	go b.forward()

	return b, nil
}

func (b *Bus) listenAll() error {
	for name := range b.channels {
		if err := b.listener.Listen(name); err != nil {
			return fmt.Errorf("listen %s: %w", name, err)
		}
	}
	return nil
}

func (b *Bus) onListenerEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnectionAttemptFailed:
		b.logger.Warn("Postgres listener failed to connect", "error", err)
	case pq.ListenerEventDisconnected:
		b.logger.Warn("Postgres listener disconnected", "error", err)
	case pq.ListenerEventReconnected:
		b.logger.Info("Postgres listener reconnected")
	}
}

func (b *Bus) forward() {
	defer b.wg.Done()
	for {
		select {
		case <-b.done:
			return
		case n, ok := <-b.listener.Notify:
			if !ok {
				return
			}
			// A nil notification follows a reconnect; anything sent while
			// disconnected is gone.
			if n == nil {
				b.logger.Warn("Notifications sent while reconnecting were lost")
				continue
			}
			b.deliver(n)
		case <-time.After(pingInterval):
			go func() {
				if err := b.listener.Ping(); err != nil {
					b.logger.Warn("Postgres listener ping failed", "error", err)
				}
			}()
		}
	}
}

func (b *Bus) deliver(n *pq.Notification) {
	channel, ok := b.channels[n.Channel]
	if !ok {
		b.logger.Warn("Ignoring notification on unknown channel", "channel", n.Channel)
		return
	}
	msg, err := eventbus.Decode(channel, []byte(n.Extra))
	if err != nil {
		b.logger.Error("Dropping malformed message", "channel", channel, "error", err)
		return
	}
	if err = b.hub.Publish(context.Background(), msg); err != nil {
		b.logger.Error("Failed to hand message to hub", "channel", channel, "error", err)
	}
}

func (b *Bus) Publish(ctx context.Context, msg event.Message) error {
	body, err := eventbus.Encode(msg)
	if err != nil {
		return err
	}
	if len(body) > MaxPayload {
		return fmt.Errorf("%w: %d bytes on %s", ErrPayloadTooLarge, len(body), msg.Channel)
	}

	return b.db.WithContext(ctx).
		Exec("SELECT pg_notify(?, ?)", ChannelName(msg.Channel), string(body)).
		Error
}

func (b *Bus) Subscribe(ctx context.Context, channel event.Channel) (ports.Subscription, error) {
	return b.hub.Subscribe(ctx, channel)
}

// Ping checks the listener connection.
func (b *Bus) Ping() error {
	return b.listener.Ping()
}

// Close stops listening and ends local subscriptions.
func (b *Bus) Close() error {
	var errList []error
	b.closeOnce.Do(func() {
		close(b.done)
		errList = append(errList, b.listener.Close())
		b.wg.Wait()
		errList = append(errList, b.hub.Close())
	})
	return errors.Join(errList...)
}

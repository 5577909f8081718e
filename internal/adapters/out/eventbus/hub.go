// Package eventbus implements ports.EventBus.
//
// Hub fans messages out to the subscribers of this process. The amqp, kafka
// and postgres subpackages publish through a broker and feed what they
// consume into a Hub, so subscriptions are always served locally.
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"eats/internal/core/domain/model/event"
	"eats/internal/core/ports"
)

// DefaultBuffer is the per-subscriber backlog above which the hub warns.
const DefaultBuffer = 64

var ErrHubClosed = errors.New("event hub is closed")

// Hub is an in-process broadcast bus. Every subscriber owns an unbounded
// FIFO backlog, so Publish never blocks and never drops: a slow subscriber
// only grows its own backlog until it reads or goes away.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[event.Channel]map[*subscription]struct{}
	buffer      int
	closed      bool
	logger      *slog.Logger
}

func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subscribers: make(map[event.Channel]map[*subscription]struct{}),
		buffer:      buffer,
		logger:      logger.With("component", "EventHub"),
	}
}

var _ ports.EventBus = (*Hub)(nil)

func (h *Hub) Publish(_ context.Context, msg event.Message) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return ErrHubClosed
	}

	for sub := range h.subscribers[msg.Channel] {
		if backlog := sub.enqueue(msg); backlog == h.buffer {
			h.logger.Warn("Subscriber is falling behind",
				"channel", msg.Channel,
				"backlog", backlog,
			)
		}
	}
	return nil
}

func (h *Hub) Subscribe(ctx context.Context, channel event.Channel) (ports.Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	sub := &subscription{
		hub:     h,
		channel: channel,
		backlog: make([]event.Message, 0, h.buffer),
		events:  make(chan event.Message),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	if h.subscribers[channel] == nil {
		h.subscribers[channel] = make(map[*subscription]struct{})
	}
	h.subscribers[channel][sub] = struct{}{}

	go sub.pump()
	go func() {
		select {
		case <-ctx.Done():
			_ = sub.Close()
		case <-sub.done:
		}
	}()

	return sub, nil
}

// SubscriberCount reports the live subscriptions on channel.
func (h *Hub) SubscriberCount(channel event.Channel) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[channel])
}

// Close ends every subscription. Later calls to Publish and Subscribe fail
// with ErrHubClosed.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	subs := make([]*subscription, 0)
	for _, set := range h.subscribers {
		for sub := range set {
			subs = append(subs, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range subs {
		_ = sub.Close()
	}
	return nil
}

func (h *Hub) remove(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers[sub.channel], sub)
	if len(h.subscribers[sub.channel]) == 0 {
		delete(h.subscribers, sub.channel)
	}
}

type subscription struct {
	hub     *Hub
	channel event.Channel

	mu      sync.Mutex
	backlog []event.Message
	closed  bool

	// events is unbuffered and owned by pump, which closes it.
	events chan event.Message
	wake   chan struct{}
	done   chan struct{}
}

func (s *subscription) Events() <-chan event.Message {
	return s.events
}

func (s *subscription) Close() error {
	s.hub.remove(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.backlog = nil
	close(s.done)
	return nil
}

// enqueue appends msg to the backlog and returns the backlog length.
func (s *subscription) enqueue(msg event.Message) int {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0
	}
	s.backlog = append(s.backlog, msg)
	n := len(s.backlog)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return n
}

func (s *subscription) next() (event.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.backlog) == 0 {
		return event.Message{}, false
	}
	msg := s.backlog[0]
	s.backlog[0] = event.Message{}
	s.backlog = s.backlog[1:]
	return msg, true
}

// pump moves the backlog into events in publish order until Close.
func (s *subscription) pump() {
	defer close(s.events)

	for {
		select {
		case <-s.done:
			return
		default:
		}

		msg, ok := s.next()
		if !ok {
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}

		select {
		case s.events <- msg:
		case <-s.done:
			return
		}
	}
}

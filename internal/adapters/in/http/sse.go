package http

import (
	"net/http"
	"strconv"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"

	"github.com/gin-contrib/sse"
	"github.com/labstack/echo/v4"
)

// keepAliveInterval spaces the comment lines sent on idle streams so
// proxies keep the connection open.
const keepAliveInterval = 30 * time.Second

// PendingOrders handles GET /api/v1/subscriptions/pending-orders.
func (s *Server) PendingOrders(ctx echo.Context) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	return s.stream(ctx, services.PendingOrdersFilter(c))
}

// CookedOrders handles GET /api/v1/subscriptions/cooked-orders.
func (s *Server) CookedOrders(ctx echo.Context) error {
	if _, err := caller(ctx); err != nil {
		return err
	}
	return s.stream(ctx, services.CookedOrdersFilter())
}

// OrderUpdates handles GET /api/v1/subscriptions/orders/{orderId}. The order
// must be visible to the caller before the stream opens.
func (s *Server) OrderUpdates(ctx echo.Context, orderId uint) error {
	if _, err := s.visibleOrder(ctx, orderId); err != nil {
		return err
	}
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	return s.stream(ctx, services.OrderUpdatesFilter(c, kernel.ID(orderId)))
}

// stream writes every accepted message of the filter's channel as a server
// sent event until the client goes away or the subscription ends.
func (s *Server) stream(ctx echo.Context, filter services.SubscriptionFilter) error {
	reqCtx := ctx.Request().Context()

	sub, err := s.bus.Subscribe(reqCtx, filter.Channel())
	if err != nil {
		return err
	}
	defer sub.Close()

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, sse.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-keepAlive.C:
			if _, err = w.Write([]byte(": keep-alive\n\n")); err != nil {
				return nil
			}
			w.Flush()
		case msg, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if !filter.Accept(msg) {
				continue
			}
			err = sse.Encode(w, sse.Event{
				Event: string(msg.Channel),
				Id:    strconv.FormatUint(uint64(msg.Order.ID), 10),
				Data:  toAPIEventOrder(msg.Order),
			})
			if err != nil {
				s.logger.Warn("Failed to write event", "channel", msg.Channel, "error", err)
				return nil
			}
			w.Flush()
		}
	}
}

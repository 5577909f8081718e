package queries

import (
	"context"

	"eats/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the caller's orders with their items.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns orders oldest first. It never returns nil on success.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	column, ok := participantColumn(query.Caller().Role())
	if !ok {
		return make([]OrderView, 0), nil
	}

	sql := orderSelect + " WHERE o." + column + " = ?"
	args := []any{query.Caller().ID().Uint()}
	if status, filtered := query.Status(); filtered {
		sql += " AND o.status = ?"
		args = append(args, status.String())
	}
	sql += " ORDER BY o.id"

	orders, err := scanOrders(h.db.WithContext(ctx).Raw(sql, args...))
	if err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func participantColumn(role user.Role) (string, bool) {
	switch role {
	case user.Client:
		return "customer_id", true
	case user.Delivery:
		return "driver_id", true
	case user.Owner:
		return "owner_id", true
	default:
		return "", false
	}
}

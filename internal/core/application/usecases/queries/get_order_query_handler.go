package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and applies the order access policy
// to it, so reads and status edits share one visibility rule.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB, policy services.OrderAccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle fails with an ObjectNotFoundError for an unknown order and with a
// ForbiddenError when the caller may not view it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	orders, err := scanOrders(h.db.WithContext(ctx).Raw(orderSelect+" WHERE o.id = ?", query.OrderID().Uint()))
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return OrderView{}, err
	}
	view := orders[0]

	o, err := restoreOrder(view)
	if err != nil {
		return OrderView{}, err
	}
	if !h.policy.CanView(query.Caller(), o) {
		return OrderView{}, errs.NewForbiddenError(ReasonCannotSeeOrder)
	}

	return view, nil
}

func restoreOrder(view OrderView) (*order.Order, error) {
	status, err := order.ParseStatus(view.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.ID
	if view.DriverID != nil {
		id := kernel.ID(*view.DriverID)
		driverID = &id
	}

	items := make([]*order.Item, 0, len(view.Items))
	for _, v := range view.Items {
		item, itemErr := order.RestoreItem(kernel.ID(v.ID), kernel.ID(v.DishID), v.DishName, v.Price, v.Options)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		kernel.ID(view.ID),
		kernel.ID(view.CustomerID),
		driverID,
		kernel.ID(view.RestaurantID),
		kernel.ID(view.OwnerID),
		items,
		view.Total,
		status,
		view.CreatedAt,
	)
}

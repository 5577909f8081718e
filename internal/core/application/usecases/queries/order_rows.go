package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

const orderSelect = `
	SELECT
		o.id,
		o.customer_id,
		o.driver_id,
		o.restaurant_id,
		COALESCE(r.name, ''),
		o.owner_id,
		o.total,
		o.status,
		o.created_at
	FROM orders o
	LEFT JOIN restaurants r ON r.id = o.restaurant_id
`

func scanOrders(query *gorm.DB) ([]OrderView, error) {
	rows, err := query.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var o OrderView
		err = rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.DriverID,
			&o.RestaurantID,
			&o.RestaurantName,
			&o.OwnerID,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		o.Items = make([]OrderItemView, 0)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the items of all orders with one query.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(orders))
	index := make(map[uint]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID)
		index[o.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, order_id, dish_id, dish_name, price, options
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemView
		var orderID uint
		var options *string

		if err = rows.Scan(&item.ID, &orderID, &item.DishID, &item.DishName, &item.Price, &options); err != nil {
			return err
		}
		if options != nil && *options != "" {
			if err = json.Unmarshal([]byte(*options), &item.Options); err != nil {
				return err
			}
		}

		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}

	return rows.Err()
}

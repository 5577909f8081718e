package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

// Handle returns the newest payment first.
func (h GetPaymentsQueryHandler) Handle(ctx context.Context, query GetPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.id, p.transaction_id, p.restaurant_id, COALESCE(r.name, ''), p.created_at
		FROM payments p
		LEFT JOIN restaurants r ON r.id = p.restaurant_id
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC, p.id DESC
	`, query.Caller().ID().Uint()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentView, 0)
	for rows.Next() {
		var p PaymentView
		if err = rows.Scan(&p.ID, &p.TransactionID, &p.RestaurantID, &p.RestaurantName, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

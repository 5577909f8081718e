package ports

import (
	"context"

	"eats/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for promotion payments.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error
}

// Package payment records promotion purchases made by restaurant owners.
package payment

import (
	"errors"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")

// Payment is an owner's payment for promoting one of their restaurants.
type Payment struct {
	id            kernel.ID
	transactionID string
	userID        kernel.ID
	restaurantID  kernel.ID
	createdAt     time.Time

	isConstructed bool
}

// NewPayment records a payment made by userID for restaurantID.
func NewPayment(transactionID string, userID, restaurantID kernel.ID, createdAt time.Time) (*Payment, error) {
	transactionID = strings.TrimSpace(transactionID)

	var errTransaction error
	if transactionID == "" {
		errTransaction = errs.NewValueIsRequiredError("transactionId")
	}
	if err := errors.Join(errTransaction, userID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	return &Payment{
		transactionID: transactionID,
		userID:        userID,
		restaurantID:  restaurantID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestorePayment rebuilds a persisted payment.
func RestorePayment(
	id kernel.ID,
	transactionID string,
	userID, restaurantID kernel.ID,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(transactionID, userID, restaurantID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = p.AssignID(id); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate ensures the payment was built by a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.ID {
	return p.id
}

func (p *Payment) TransactionID() string {
	return p.transactionID
}

func (p *Payment) UserID() kernel.ID {
	return p.userID
}

func (p *Payment) RestaurantID() kernel.ID {
	return p.restaurantID
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// AssignID records the store-assigned identity.
func (p *Payment) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

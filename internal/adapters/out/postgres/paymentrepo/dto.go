// Package paymentrepo persists promotion payments.
package paymentrepo

import (
	"time"

	"eats/internal/core/domain/model/payment"
)

type PaymentDTO struct {
	ID            uint   `gorm:"primaryKey"`
	TransactionID string `gorm:"not null"`
	UserID        uint   `gorm:"index;not null"`
	RestaurantID  uint   `gorm:"index;not null"`
	CreatedAt     time.Time
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Uint(),
		TransactionID: p.TransactionID(),
		UserID:        p.UserID().Uint(),
		RestaurantID:  p.RestaurantID().Uint(),
		CreatedAt:     p.CreatedAt(),
	}
}

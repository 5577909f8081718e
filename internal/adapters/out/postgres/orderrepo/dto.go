// Package orderrepo maps order aggregates and their items to the orders and
// order_items tables.
package orderrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderDTO is the orders table row. OwnerID is copied from the restaurant
// when the order is placed so owner lookups need no join.
type OrderDTO struct {
	ID           uint           `gorm:"primaryKey"`
	CustomerID   uint           `gorm:"index;not null"`
	DriverID     *uint          `gorm:"index"`
	RestaurantID uint           `gorm:"index;not null"`
	OwnerID      uint           `gorm:"index;not null"`
	Total        int            `gorm:"not null"`
	Status       string         `gorm:"size:16;index;not null"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one priced dish of an order.
type OrderItemDTO struct {
	ID       uint               `gorm:"primaryKey"`
	OrderID  uint               `gorm:"index;not null"`
	DishID   uint               `gorm:"not null"`
	DishName string             `gorm:"not null"`
	Price    int                `gorm:"not null"`
	Options  []order.ItemOption `gorm:"type:text;serializer:json"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uint
	if id := o.DriverID(); id != nil {
		raw := id.Uint()
		driverID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:       item.ID().Uint(),
			OrderID:  o.ID().Uint(),
			DishID:   item.DishID().Uint(),
			DishName: item.DishName(),
			Price:    item.Price(),
			Options:  item.Options(),
		})
	}

	return OrderDTO{
		ID:           o.ID().Uint(),
		CustomerID:   o.CustomerID().Uint(),
		DriverID:     driverID,
		RestaurantID: o.RestaurantID().Uint(),
		OwnerID:      o.OwnerID().Uint(),
		Total:        o.Total(),
		Status:       o.Status().String(),
		Items:        items,
		CreatedAt:    o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.ID
	if dto.DriverID != nil {
		id := kernel.ID(*dto.DriverID)
		driverID = &id
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreItem(
			kernel.ID(itemDTO.ID),
			kernel.ID(itemDTO.DishID),
			itemDTO.DishName,
			itemDTO.Price,
			itemDTO.Options,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.CustomerID),
		driverID,
		kernel.ID(dto.RestaurantID),
		kernel.ID(dto.OwnerID),
		items,
		dto.Total,
		status,
		dto.CreatedAt,
	)
}

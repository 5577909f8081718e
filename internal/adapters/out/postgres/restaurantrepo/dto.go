// Package restaurantrepo persists restaurants, their categories and menus.
package restaurantrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

type CategoryDTO struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	Slug      string `gorm:"size:100;uniqueIndex;not null"`
	CoverImg  string
	CreatedAt time.Time
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// RestaurantDTO is the restaurants table row. Deleting a category leaves its
// restaurants uncategorised; deleting a restaurant removes its menu.
type RestaurantDTO struct {
	ID            uint         `gorm:"primaryKey"`
	Name          string       `gorm:"not null"`
	Address       string       `gorm:"not null"`
	CoverImg      string
	OwnerID       uint         `gorm:"index;not null"`
	CategoryID    *uint        `gorm:"index"`
	Category      *CategoryDTO `gorm:"constraint:OnDelete:SET NULL"`
	Dishes        []DishDTO    `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	IsPromoted    bool         `gorm:"not null;default:false;index"`
	PromotedUntil *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO is the dishes table row. Options are kept as a JSON document.
type DishDTO struct {
	ID           uint                    `gorm:"primaryKey"`
	RestaurantID uint                    `gorm:"index;not null"`
	Name         string                  `gorm:"not null"`
	Price        int                     `gorm:"not null"`
	Description  string                  `gorm:"size:140"`
	Photo        string
	Options      []restaurant.DishOption `gorm:"type:text;serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (DishDTO) TableName() string {
	return "dishes"
}

func categoryFromDomain(c restaurant.Category) CategoryDTO {
	return CategoryDTO{
		ID:       c.ID().Uint(),
		Name:     c.Name(),
		Slug:     c.Slug(),
		CoverImg: c.CoverImg(),
	}
}

func categoryToDomain(dto CategoryDTO) (restaurant.Category, error) {
	return restaurant.RestoreCategory(kernel.ID(dto.ID), dto.Name, dto.Slug, dto.CoverImg)
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	var categoryID *uint
	if id := r.CategoryID(); id != nil {
		raw := id.Uint()
		categoryID = &raw
	}

	return RestaurantDTO{
		ID:            r.ID().Uint(),
		Name:          r.Name(),
		Address:       r.Address(),
		CoverImg:      r.CoverImg(),
		OwnerID:       r.OwnerID().Uint(),
		CategoryID:    categoryID,
		IsPromoted:    r.IsPromoted(),
		PromotedUntil: r.PromotedUntil(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	var categoryID *kernel.ID
	if dto.CategoryID != nil {
		id := kernel.ID(*dto.CategoryID)
		categoryID = &id
	}

	var promotedUntil *time.Time
	if dto.IsPromoted {
		promotedUntil = dto.PromotedUntil
	}

	return restaurant.RestoreRestaurant(
		kernel.ID(dto.ID),
		dto.Name,
		dto.Address,
		dto.CoverImg,
		kernel.ID(dto.OwnerID),
		categoryID,
		promotedUntil,
	)
}

func dishFromDomain(d *restaurant.Dish) DishDTO {
	return DishDTO{
		ID:           d.ID().Uint(),
		RestaurantID: d.RestaurantID().Uint(),
		Name:         d.Name(),
		Price:        d.Price(),
		Description:  d.Description(),
		Photo:        d.Photo(),
		Options:      d.Options(),
	}
}

func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	return restaurant.RestoreDish(
		kernel.ID(dto.ID),
		kernel.ID(dto.RestaurantID),
		dto.Name,
		dto.Price,
		dto.Description,
		dto.Photo,
		dto.Options,
	)
}

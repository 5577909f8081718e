package restaurantrepo

import (
	"context"

	"eats/internal/core/domain/model/restaurant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// GetOrCreate inserts the category unless its slug is already taken and
// returns the stored row either way.
func (r *GormCategoryRepository) GetOrCreate(
	ctx context.Context,
	category restaurant.Category,
) (restaurant.Category, error) {
	db := r.db.WithContext(ctx)

	dto := categoryFromDomain(category)
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
	if err != nil {
		return restaurant.Category{}, err
	}

	var stored CategoryDTO
	if err = db.First(&stored, "slug = ?", category.Slug()).Error; err != nil {
		return restaurant.Category{}, err
	}

	return categoryToDomain(stored)
}

package restaurantrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormDishRepository(db *gorm.DB, tracker aggregateTracker) *GormDishRepository {
	return &GormDishRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDishRepository) Add(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDishRepository) Update(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DishDTO{ID: dto.ID}).
		Select("name", "price", "description", "photo", "options").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDishRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DishDTO{}, id.Uint())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", id)
	}
	return nil
}

func (r *GormDishRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Uint()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id)
		}
		return nil, err
	}

	return dishToDomain(dto)
}

func (r *GormDishRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*restaurant.Dish, error) {
	var dtos []DishDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Uint()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	dishes := make([]*restaurant.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := dishToDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}

	return dishes, nil
}

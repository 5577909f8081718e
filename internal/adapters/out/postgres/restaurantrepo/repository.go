package restaurantrepo

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ReasonPromotionChanged is the conflict reason when the promotion changed
// between reading the restaurant and writing it back.
const ReasonPromotionChanged = "Restaurant promotion changed, try again"

// Update writes the catalog columns. Cleared values such as a removed
// category are stored too. Promotion columns are left to UpdatePromotion
// and ExpirePromotions.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{ID: dto.ID}).
		Select("name", "address", "cover_img", "category_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdatePromotion writes the promotion columns only while the row still holds
// previous as its promoted_until (nil meaning none).
func (r *GormRestaurantRepository) UpdatePromotion(
	ctx context.Context,
	aggregate *restaurant.Restaurant,
	previous *time.Time,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	query := r.db.WithContext(ctx).Model(&RestaurantDTO{ID: dto.ID})
	if previous == nil {
		query = query.Where("promoted_until IS NULL")
	} else {
		query = query.Where("promoted_until = ?", *previous)
	}

	result := query.Select("is_promoted", "promoted_until").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missOrConflict(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExpirePromotions ends every promotion whose end is before now in one
// statement and returns how many restaurants it changed.
func (r *GormRestaurantRepository) ExpirePromotions(ctx context.Context, now time.Time) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("is_promoted = ? AND promoted_until < ?", true, now).
		Updates(map[string]any{"is_promoted": false, "promoted_until": nil})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *GormRestaurantRepository) missOrConflict(ctx context.Context, id kernel.ID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Where("id = ?", id.Uint()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("restaurant", id)
	}
	return errs.NewConflictError(ReasonPromotionChanged)
}

// Delete removes the restaurant and its dishes.
func (r *GormRestaurantRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("restaurant_id = ?", id.Uint()).Delete(&DishDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&RestaurantDTO{}, id.Uint())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id)
	}
	return nil
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Uint()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id)
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

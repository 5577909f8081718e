package queries

import (
	"context"
	"encoding/json"

	"eats/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const restaurantSelect = `
	SELECT
		r.id,
		r.name,
		r.address,
		COALESCE(r.cover_img, ''),
		r.owner_id,
		r.category_id,
		COALESCE(c.name, ''),
		r.is_promoted,
		r.promoted_until
	FROM restaurants r
	LEFT JOIN categories c ON c.id = r.category_id
`

// listRestaurants pages through restaurants matching where, promoted
// restaurants first.
func listRestaurants(
	ctx context.Context,
	db *gorm.DB,
	page kernel.Page,
	where string,
	args ...any,
) (RestaurantsPage, error) {
	var total int64
	countSQL := "SELECT COUNT(*) FROM restaurants r WHERE " + where
	if err := db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return RestaurantsPage{}, err
	}

	listSQL := restaurantSelect + " WHERE " + where + " ORDER BY r.is_promoted DESC, r.id LIMIT ? OFFSET ?"
	restaurants, err := scanRestaurants(db.WithContext(ctx).Raw(listSQL, append(args, page.Size(), page.Offset())...))
	if err != nil {
		return RestaurantsPage{}, err
	}

	return RestaurantsPage{
		Restaurants:  restaurants,
		TotalPages:   page.TotalPages(total),
		TotalResults: total,
	}, nil
}

func scanRestaurants(query *gorm.DB) ([]RestaurantView, error) {
	rows, err := query.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantView, 0)
	for rows.Next() {
		var r RestaurantView
		err = rows.Scan(
			&r.ID,
			&r.Name,
			&r.Address,
			&r.CoverImg,
			&r.OwnerID,
			&r.CategoryID,
			&r.CategoryName,
			&r.IsPromoted,
			&r.PromotedUntil,
		)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}

func loadMenu(ctx context.Context, db *gorm.DB, restaurantID uint) ([]DishView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, name, price, COALESCE(description, ''), COALESCE(photo, ''), options
		FROM dishes
		WHERE restaurant_id = ?
		ORDER BY id
	`, restaurantID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := make([]DishView, 0)
	for rows.Next() {
		var d DishView
		var options *string
		if err = rows.Scan(&d.ID, &d.Name, &d.Price, &d.Description, &d.Photo, &options); err != nil {
			return nil, err
		}
		if options != nil && *options != "" {
			if err = json.Unmarshal([]byte(*options), &d.Options); err != nil {
				return nil, err
			}
		}
		menu = append(menu, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

const categorySelect = `
	SELECT
		c.id,
		c.name,
		c.slug,
		COALESCE(c.cover_img, ''),
		(SELECT COUNT(*) FROM restaurants r WHERE r.category_id = c.id)
	FROM categories c
`

type AllCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewAllCategoriesQueryHandler(db *gorm.DB) AllCategoriesQueryHandler {
	return AllCategoriesQueryHandler{db: db}
}

// Handle returns categories sorted by name.
func (h AllCategoriesQueryHandler) Handle(ctx context.Context, query AllCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return scanCategories(h.db.WithContext(ctx).Raw(categorySelect + " ORDER BY c.name"))
}

func scanCategories(query *gorm.DB) ([]CategoryView, error) {
	rows, err := query.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryView, 0)
	for rows.Next() {
		var c CategoryView
		if err = rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CoverImg, &c.RestaurantCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

package restaurant

import (
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// Category groups restaurants. Names are stored trimmed and lower case so
// that "Korean BBQ" and " korean bbq" resolve to the same category.
type Category struct {
	id       kernel.ID
	name     string
	slug     string
	coverImg string
}

// NewCategory normalises a raw category name and derives its slug.
//
// Example:
//
//	c, _ := restaurant.NewCategory(" Korean BBQ ")
//	c.Name() // "korean bbq"
//	c.Slug() // "korean-bbq"
func NewCategory(rawName string) (Category, error) {
	name := NormalizeCategoryName(rawName)
	if name == "" {
		return Category{}, errs.NewValueIsRequiredError("category name")
	}
	return Category{name: name, slug: Slugify(name)}, nil
}

// RestoreCategory rebuilds a persisted category.
func RestoreCategory(id kernel.ID, name, slug, coverImg string) (Category, error) {
	if err := id.Validate(); err != nil {
		return Category{}, err
	}
	c, err := NewCategory(name)
	if err != nil {
		return Category{}, err
	}
	c.id = id
	if slug != "" {
		c.slug = slug
	}
	c.coverImg = coverImg
	return c, nil
}

// NormalizeCategoryName trims and lower-cases a category name.
func NormalizeCategoryName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Slugify replaces every space of a normalised name with a dash.
func Slugify(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}

func (c Category) ID() kernel.ID {
	return c.id
}

func (c Category) Name() string {
	return c.name
}

func (c Category) Slug() string {
	return c.slug
}

func (c Category) CoverImg() string {
	return c.coverImg
}

// WithID returns a copy carrying the store-assigned identity.
func (c Category) WithID(id kernel.ID) Category {
	c.id = id
	return c
}

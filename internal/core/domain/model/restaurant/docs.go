// Package restaurant models the catalog: restaurants, their categories and
// the dishes on their menus.
//
// The package includes:
//   - Category: a normalised restaurant category with a URL slug
//   - Restaurant: the aggregate an Owner manages, including its paid promotion
//   - Dish: a menu entry with a base price and selectable options
//   - DishOption, DishChoice: the option catalog of a dish
//   - OptionMatch: the tagged result of resolving a selected option against a dish
//
// Key business rules:
//   - A dish belongs to exactly one restaurant
//   - Only the owner of a restaurant may change it or its dishes
//   - A flat option extra takes precedence over choice extras
//   - Selecting an option the dish does not offer has no pricing effect
package restaurant

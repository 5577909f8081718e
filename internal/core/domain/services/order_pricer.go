package services

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
)

// ReasonDishNotOnMenu is the reason given when an order names a dish the
// restaurant does not serve.
const ReasonDishNotOnMenu = "Dish not found."

// Menu indexes the dishes of one restaurant by ID.
type Menu map[kernel.ID]*restaurant.Dish

// NewMenu indexes dishes by ID.
func NewMenu(dishes []*restaurant.Dish) Menu {
	menu := make(Menu, len(dishes))
	for _, d := range dishes {
		menu[d.ID()] = d
	}
	return menu
}

// OrderPricer prices order selections against a restaurant menu.
//
// Example:
//
//	pricer := services.NewOrderPricer()
//	total, err := pricer.ComputeTotal(menu, []order.Selection{
//	    {DishID: 7, Options: []order.ItemOption{{Name: "Spice", Choice: "Hot"}}},
//	})
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// PriceItem returns the dish base price plus the extra of every selected
// option as resolved by restaurant.Dish.MatchOption. Unmatched selections
// add nothing.
func (OrderPricer) PriceItem(dish *restaurant.Dish, options []order.ItemOption) int {
	price := dish.Price()
	for _, selected := range options {
		price += dish.MatchOption(selected.Name, selected.Choice).Extra()
	}
	return price
}

// PriceItems prices each selection and snapshots it as an order item.
// It fails with an ObjectNotFoundError when a dish is not on the menu.
func (p OrderPricer) PriceItems(menu Menu, selections []order.Selection) ([]*order.Item, int, error) {
	items := make([]*order.Item, 0, len(selections))
	total := 0
	for _, selection := range selections {
		dish, ok := menu[selection.DishID]
		if !ok {
			return nil, 0, errs.NewObjectNotFoundErrorWithReason("dish", selection.DishID, ReasonDishNotOnMenu)
		}

		price := p.PriceItem(dish, selection.Options)
		item, err := order.NewItem(dish.ID(), dish.Name(), price, selection.Options)
		if err != nil {
			return nil, 0, err
		}

		items = append(items, item)
		total += price
	}
	return items, total, nil
}

// ComputeTotal sums the prices of all selections.
// It fails with an ObjectNotFoundError when a dish is not on the menu.
func (p OrderPricer) ComputeTotal(menu Menu, selections []order.Selection) (int, error) {
	total := 0
	for _, selection := range selections {
		dish, ok := menu[selection.DishID]
		if !ok {
			return 0, errs.NewObjectNotFoundErrorWithReason("dish", selection.DishID, ReasonDishNotOnMenu)
		}
		total += p.PriceItem(dish, selection.Options)
	}
	return total, nil
}

package order

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ItemOption is an option selected by the customer, echoing a dish option
// name and, optionally, one of its choice names.
type ItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// Selection is a requested line of a new order before pricing.
type Selection struct {
	DishID  kernel.ID
	Options []ItemOption
}

// Item is an ordered dish captured at order time. Name and price are copied
// from the dish so later catalog edits do not rewrite order history.
type Item struct {
	id       kernel.ID
	dishID   kernel.ID
	dishName string
	price    int
	options  []ItemOption
}

// NewItem snapshots a priced dish selection.
func NewItem(dishID kernel.ID, dishName string, price int, options []ItemOption) (*Item, error) {
	if err := dishID.Validate(); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("item price", fmt.Errorf("%d is negative", price))
	}
	return &Item{
		dishID:   dishID,
		dishName: dishName,
		price:    price,
		options:  append([]ItemOption(nil), options...),
	}, nil
}

// RestoreItem rebuilds a persisted item.
func RestoreItem(id, dishID kernel.ID, dishName string, price int, options []ItemOption) (*Item, error) {
	if err := errors.Join(id.Validate(), dishID.Validate()); err != nil {
		return nil, err
	}
	item, err := NewItem(dishID, dishName, price, options)
	if err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

func (i *Item) ID() kernel.ID {
	return i.id
}

func (i *Item) DishID() kernel.ID {
	return i.dishID
}

func (i *Item) DishName() string {
	return i.dishName
}

// Price is the dish base price plus the extras of the selected options.
func (i *Item) Price() int {
	return i.price
}

// Options returns a copy of the selected options.
func (i *Item) Options() []ItemOption {
	return append([]ItemOption(nil), i.options...)
}

// AssignID records the store-assigned identity.
func (i *Item) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

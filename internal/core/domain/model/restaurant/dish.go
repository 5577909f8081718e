package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

const (
	minDishNameLength       = 5
	maxDishDescriptionChars = 140
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish constructor")

// Dish is a menu entry of exactly one restaurant.
type Dish struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	price        int
	photo        string
	description  string
	options      []DishOption

	isConstructed bool
}

// NewDish validates and creates a dish for a persisted restaurant.
func NewDish(
	restaurantID kernel.ID,
	name string,
	price int,
	description string,
	photo string,
	options []DishOption,
) (*Dish, error) {
	d := &Dish{isConstructed: true}

	if err := errors.Join(
		d.setRestaurantID(restaurantID),
		d.Rename(name),
		d.ChangePrice(price),
		d.ChangeDescription(description),
		d.ReplaceOptions(options),
	); err != nil {
		return nil, err
	}
	d.photo = photo

	return d, nil
}

// RestoreDish rebuilds a persisted dish.
func RestoreDish(
	id kernel.ID,
	restaurantID kernel.ID,
	name string,
	price int,
	description string,
	photo string,
	options []DishOption,
) (*Dish, error) {
	d, err := NewDish(restaurantID, name, price, description, photo, options)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	d.id = id
	return d, nil
}

// Validate ensures the dish was built by a constructor.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.ID {
	return d.id
}

func (d *Dish) RestaurantID() kernel.ID {
	return d.restaurantID
}

func (d *Dish) Name() string {
	return d.name
}

// Price is the base price in the smallest currency unit.
func (d *Dish) Price() int {
	return d.price
}

func (d *Dish) Photo() string {
	return d.photo
}

func (d *Dish) Description() string {
	return d.description
}

// Options returns a copy of the option catalog.
func (d *Dish) Options() []DishOption {
	out := make([]DishOption, len(d.options))
	for i, o := range d.options {
		out[i] = DishOption{Name: o.Name, Extra: o.Extra, Choices: append([]DishChoice(nil), o.Choices...)}
	}
	return out
}

// AssignID records the store-assigned identity.
func (d *Dish) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// MatchOption resolves a selection against the option catalog.
//
// The first option whose name equals optionName wins. A non-zero flat extra
// on that option is returned without looking at choice. Otherwise the choice
// named choice is looked up and its extra returned. An option with neither a
// flat extra nor a selected choice matches with a zero extra.
//
// Example:
//
//	dish.MatchOption("Size", "")     // Matched(2000) when Size has a flat extra of 2000
//	dish.MatchOption("Spice", "Hot") // Matched(500) when the Hot choice costs 500
//	dish.MatchOption("Topping", "")  // Unmatched when the dish has no Topping option
func (d *Dish) MatchOption(optionName, choice string) OptionMatch {
	for _, option := range d.options {
		if option.Name != optionName {
			continue
		}
		if option.Extra != 0 {
			return Matched(option.Extra)
		}
		if choice == "" {
			return Matched(0)
		}
		for _, c := range option.Choices {
			if c.Name == choice {
				return Matched(c.Extra)
			}
		}
		return Unmatched()
	}
	return Unmatched()
}

// Rename changes the dish name.
func (d *Dish) Rename(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < minDishNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"dish name",
			fmt.Errorf("%q is shorter than %d characters", name, minDishNameLength),
		)
	}
	d.name = name
	return nil
}

// ChangePrice changes the base price. Existing orders keep their snapshot.
func (d *Dish) ChangePrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	d.price = price
	return nil
}

// ChangeDescription changes the description.
func (d *Dish) ChangeDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) > maxDishDescriptionChars {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 0, maxDishDescriptionChars)
	}
	d.description = description
	return nil
}

// ChangePhoto replaces the photo URL.
func (d *Dish) ChangePhoto(photo string) {
	d.photo = photo
}

// ReplaceOptions swaps the whole option catalog.
func (d *Dish) ReplaceOptions(options []DishOption) error {
	for _, o := range options {
		if strings.TrimSpace(o.Name) == "" {
			return errs.NewValueIsRequiredError("option name")
		}
	}
	d.options = make([]DishOption, len(options))
	for i, o := range options {
		d.options[i] = DishOption{Name: o.Name, Extra: o.Extra, Choices: append([]DishChoice(nil), o.Choices...)}
	}
	return nil
}

func (d *Dish) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.restaurantID = id
	return nil
}

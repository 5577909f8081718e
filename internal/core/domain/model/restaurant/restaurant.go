package restaurant

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

const minRestaurantNameLength = 5

var ErrRestaurantIsNotConstructed = errors.New(
	"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor",
)

// Restaurant is the aggregate an Owner manages.
//
// Invariants:
//   - ownerID never changes after creation
//   - a promoted restaurant always has a promotion end time
//   - categoryID is nil when the restaurant is uncategorised
type Restaurant struct {
	id            kernel.ID
	name          string
	address       string
	coverImg      string
	ownerID       kernel.ID
	categoryID    *kernel.ID
	isPromoted    bool
	promotedUntil *time.Time

	isConstructed bool
}

// NewRestaurant creates an unpromoted restaurant owned by ownerID.
//
// Example:
//
//	cat, _ := categoryRepo.GetOrCreate(ctx, "Korean BBQ")
//	catID := cat.ID()
//	r, err := restaurant.NewRestaurant("Gogi House", "Seoul 1", "https://cdn/gogi.png", caller.ID(), &catID)
func NewRestaurant(name, address, coverImg string, ownerID kernel.ID, categoryID *kernel.ID) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true}

	if err := errors.Join(
		r.Rename(name),
		r.ChangeAddress(address),
		r.ChangeCoverImg(coverImg),
		r.setOwnerID(ownerID),
		r.ChangeCategory(categoryID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant rebuilds a persisted restaurant.
func RestoreRestaurant(
	id kernel.ID,
	name, address, coverImg string,
	ownerID kernel.ID,
	categoryID *kernel.ID,
	promotedUntil *time.Time,
) (*Restaurant, error) {
	r, err := NewRestaurant(name, address, coverImg, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	if err = r.AssignID(id); err != nil {
		return nil, err
	}
	if promotedUntil != nil {
		until := *promotedUntil
		r.isPromoted = true
		r.promotedUntil = &until
	}
	return r, nil
}

// Validate ensures the restaurant was built by a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.ID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Address() string {
	return r.address
}

func (r *Restaurant) CoverImg() string {
	return r.coverImg
}

func (r *Restaurant) OwnerID() kernel.ID {
	return r.ownerID
}

func (r *Restaurant) CategoryID() *kernel.ID {
	if r.categoryID == nil {
		return nil
	}
	id := *r.categoryID
	return &id
}

func (r *Restaurant) IsPromoted() bool {
	return r.isPromoted
}

func (r *Restaurant) PromotedUntil() *time.Time {
	if r.promotedUntil == nil {
		return nil
	}
	until := *r.promotedUntil
	return &until
}

// IsOwnedBy reports whether ownerID manages this restaurant.
func (r *Restaurant) IsOwnedBy(ownerID kernel.ID) bool {
	return r.ownerID == ownerID
}

// AssignID records the store-assigned identity.
func (r *Restaurant) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !r.id.IsZero() && r.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("restaurant already has id %s", r.id))
	}
	r.id = id
	return nil
}

// Rename changes the display name.
func (r *Restaurant) Rename(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < minRestaurantNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"restaurant name",
			fmt.Errorf("%q is shorter than %d characters", name, minRestaurantNameLength),
		)
	}
	r.name = name
	return nil
}

// ChangeAddress changes the street address.
func (r *Restaurant) ChangeAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

// ChangeCoverImg changes the cover image URL.
func (r *Restaurant) ChangeCoverImg(coverImg string) error {
	coverImg = strings.TrimSpace(coverImg)
	if coverImg == "" {
		return errs.NewValueIsRequiredError("coverImg")
	}
	r.coverImg = coverImg
	return nil
}

// ChangeCategory moves the restaurant to another category; nil uncategorises it.
func (r *Restaurant) ChangeCategory(categoryID *kernel.ID) error {
	if categoryID == nil {
		r.categoryID = nil
		return nil
	}
	if err := categoryID.Validate(); err != nil {
		return err
	}
	id := *categoryID
	r.categoryID = &id
	return nil
}

// Promote features the restaurant for days days counted from now.
func (r *Restaurant) Promote(now time.Time, days int) error {
	if days <= 0 {
		return errs.NewValueIsOutOfRangeError("promotion days", days, 1, "unbounded")
	}
	until := now.AddDate(0, 0, days)
	r.isPromoted = true
	r.promotedUntil = &until
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.ID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	r.ownerID = ownerID
	return nil
}

package order

import (
	"errors"
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ReasonDriverAlreadyAssigned is the reason reported when an order is taken twice.
const ReasonDriverAlreadyAssigned = "This order already has a driver"

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - customerID, restaurantID and ownerID are set at creation and never change
//   - items and total are fixed at creation
//   - driverID is written at most once
//   - status is always one of the five lifecycle statuses
//
// ownerID is a snapshot of the restaurant owner taken when the order is
// placed, so visibility checks never need to load the restaurant.
type Order struct {
	id           kernel.ID
	customerID   kernel.ID
	driverID     *kernel.ID
	restaurantID kernel.ID
	ownerID      kernel.ID
	items        []*Item
	total        int
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewOrder places a Pending order.
//
// Example:
//
//	total, _ := pricer.ComputeTotal(menu, selections)
//	o, err := order.NewOrder(caller.ID(), r.ID(), r.OwnerID(), items, total, time.Now())
func NewOrder(
	customerID, restaurantID, ownerID kernel.ID,
	items []*Item,
	total int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setParticipants(customerID, restaurantID, ownerID),
		o.setItems(items),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order in any status.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	driverID *kernel.ID,
	restaurantID kernel.ID,
	ownerID kernel.ID,
	items []*Item,
	total int,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(customerID, restaurantID, ownerID, items, total, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(o.AssignID(id), status.Validate()); err != nil {
		return nil, err
	}
	o.status = status

	if driverID != nil {
		if err = o.AssignDriver(*driverID); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// DriverID returns the assigned driver or nil.
func (o *Order) DriverID() *kernel.ID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

// OwnerID returns the owner of the restaurant the order was placed with.
func (o *Order) OwnerID() kernel.ID {
	return o.ownerID
}

// Items returns the ordered items.
func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

func (o *Order) Total() int {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsCustomer reports whether id placed the order.
func (o *Order) IsCustomer(id kernel.ID) bool {
	return o.customerID == id
}

// IsDriver reports whether id is the assigned driver.
func (o *Order) IsDriver(id kernel.ID) bool {
	return o.driverID != nil && *o.driverID == id
}

// IsOwner reports whether id owns the restaurant of the order.
func (o *Order) IsOwner(id kernel.ID) bool {
	return o.ownerID == id
}

// HasDriver reports whether a driver took the order.
func (o *Order) HasDriver() bool {
	return o.driverID != nil
}

// AssignID records the store-assigned identity.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() && o.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order already has id %s", o.id))
	}
	o.id = id
	return nil
}

// ChangeStatus moves the order to status. Who may request which status is
// decided by the access policy before this is called.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// AssignDriver records the driver. The slot is write-once: a second
// assignment fails with a ConflictError.
func (o *Order) AssignDriver(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return errs.NewConflictError(ReasonDriverAlreadyAssigned)
	}
	o.driverID = &driverID
	return nil
}

func (o *Order) setParticipants(customerID, restaurantID, ownerID kernel.ID) error {
	if err := errors.Join(customerID.Validate(), restaurantID.Validate(), ownerID.Validate()); err != nil {
		return err
	}
	o.customerID = customerID
	o.restaurantID = restaurantID
	o.ownerID = ownerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item == nil {
			return errs.NewValueIsRequiredError("item")
		}
	}
	o.items = append([]*Item(nil), items...)
	return nil
}

func (o *Order) setTotal(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%d is negative", total))
	}
	o.total = total
	return nil
}

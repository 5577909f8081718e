package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//	└── Owner ──────────────┘           └── Delivery ──┘
//
// The numeric value doubles as the rank used for monotonic enforcement.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota

	// Pending orders wait for the restaurant to start cooking.
	Pending

	// Cooking orders are being prepared.
	Cooking

	// Cooked orders are ready to be picked up by a driver.
	Cooked

	// PickedUp orders are on their way.
	PickedUp

	// Delivered is the final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Cooking, Cooked, PickedUp, Delivered}
}

// ParseStatus maps a label such as "PickedUp" to its Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate accepts the five lifecycle statuses.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsAfter reports whether s comes strictly later in the lifecycle than other.
func (s Status) IsAfter(other Status) bool {
	return s > other
}

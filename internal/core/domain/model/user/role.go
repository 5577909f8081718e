package user

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Role determines which operations and order status changes an account may perform.
type Role int

const (
	// UnknownRole is the zero value and is never valid.
	UnknownRole Role = iota

	// Client places orders and follows their progress.
	Client

	// Owner manages restaurants and cooks their orders.
	Owner

	// Delivery takes cooked orders and delivers them.
	Delivery
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Client:      "Client",
		Owner:       "Owner",
		Delivery:    "Delivery",
	}
}

// ParseRole maps a role label such as "Owner" to its Role.
func ParseRole(s string) (Role, error) {
	for role, label := range getRoleStrings() {
		if role != UnknownRole && label == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate accepts Client, Owner and Delivery.
func (r Role) Validate() error {
	if r != Client && r != Owner && r != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// AllowedRole is a label an operation can require from its caller. Besides
// the three role names it may be AnyRole, which admits every authenticated caller.
type AllowedRole string

const (
	AnyRole         AllowedRole = "Any"
	AllowedClient   AllowedRole = "Client"
	AllowedOwner    AllowedRole = "Owner"
	AllowedDelivery AllowedRole = "Delivery"
)

// Allows reports whether the label admits role.
func (a AllowedRole) Allows(role Role) bool {
	return a == AnyRole || string(a) == role.String()
}

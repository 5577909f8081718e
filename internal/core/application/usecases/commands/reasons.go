package commands

// Reasons reported to callers when a command is declined.
const (
	ReasonEmailTaken         = "There is a user with that email already"
	ReasonNotRestaurantOwner = "You are not owner of the restaurant"
	ReasonCannotDoThat       = "You can't do that"
	ReasonCannotEditOrder    = "You can't edit order"
)

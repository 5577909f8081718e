// Package order provides the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root tying a customer, a restaurant, an optional driver and priced items
//   - Item: an immutable snapshot of one ordered dish and the options selected for it
//   - Status: the lifecycle state with its ordering
//
// Key business rules:
//   - Orders are created Pending with their total computed once
//   - Items and total never change after creation
//   - The driver is assigned at most once
//   - Status follows Pending -> Cooking -> Cooked -> PickedUp -> Delivered;
//     whether a requested status must be later than the current one is a
//     policy decision made outside the aggregate
package order

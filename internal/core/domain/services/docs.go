// Package services provides the pure decision logic of the order lifecycle.
//
// The package includes:
//   - RoleAuthorizer: decides whether a caller may invoke an operation at all
//   - OrderAccessPolicy: decides whether a caller may view an order or change its status
//   - OrderPricer: computes item prices and order totals from a restaurant menu
//   - OrderNotifier: decides which channels an order change is published to
//   - SubscriptionFilter: narrows a broadcast channel to what one subscriber may see
//
// None of these services performs I/O or holds mutable state. Use cases load
// the aggregates, ask the services, and persist and publish the outcome.
package services

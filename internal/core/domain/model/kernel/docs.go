// Package kernel provides the primitives shared by every aggregate of the
// eats domain.
//
// The package includes:
//   - ID: the integer identity of users, restaurants, dishes, orders and payments
//   - Token: an opaque random value used for email verification codes and upload keys
//   - Page: a validated page number with offset and total page arithmetic
//
// All values are immutable and safe for concurrent use. The zero value of each
// type is invalid and is rejected by its Validate method.
package kernel

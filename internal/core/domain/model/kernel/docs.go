// Package kernel provides the value objects shared by the marketplace domain:
//
//   - UUID: identifiers for orders, parties, products and notifications
//   - Money: non-negative currency amounts backed by shopspring/decimal
//   - Address: the postal delivery address captured at checkout
//
// Values are immutable and must be created through their constructors; the zero
// value of each type fails Validate.
package kernel

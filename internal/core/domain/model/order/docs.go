// Package order provides the Order aggregate and the order status engine.
//
// The package includes:
//   - Order: the aggregate root holding items, totals, address and lifecycle state
//   - Status: the canonical sequence pending → confirmed → preparing → ready →
//     out_for_delivery → delivered, plus the terminal cancelled state
//   - ValidateTransition: the pure transition and role policy
//   - Actor and Role: the explicit caller identity passed into every operation
//
// Key business rules:
//   - Farmers advance exactly one step at a time or cancel from any non-terminal status
//   - Customers may only cancel, and only while the order is pending or confirmed
//   - Delivered and cancelled orders never change again
//   - Only parties to the order (its customer, farmers owning its items) may act on it
//
// Persistence, notification and display text live outside this package.
package order

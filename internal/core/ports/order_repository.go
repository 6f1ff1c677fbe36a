// Package ports defines the contracts between the order domain and its
// infrastructure: storage, notification delivery and event publishing.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns *errs.ObjectNotFoundError when the identifier does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CompareAndSetStatus stores newStatus only if the stored status still equals
	// expected, and returns the order as stored afterwards.
	//
	// Errors:
	//   - *errs.ObjectNotFoundError: no order with this identifier
	//   - *errs.ConcurrentModificationError: the stored status is no longer expected
	//
	// Example:
	//   updated, err := repo.CompareAndSetStatus(ctx, id, order.Pending, order.Confirmed)
	//   if errors.Is(err, errs.ErrConcurrentModification) {
	//       // re-fetch and re-derive the legal next action
	//   }
	CompareAndSetStatus(ctx context.Context, id kernel.UUID, expected, newStatus order.Status) (*order.Order, error)
}

// Package services provides domain services that don't naturally belong to the
// Order aggregate.
//
// The package includes:
//   - StatusPresenter: display labels, descriptions, badge colours, customer
//     notification text and the progress view of an order's status
//
// Presentation metadata is a stateless lookup. Nothing here is consulted when
// validating or applying a transition.
package services

package services

import (
	"marketplace/internal/core/domain/model/order"
)

// statusDisplay is the presentation metadata of a single status.
type statusDisplay struct {
	label       string
	description string
	color       string
	message     string
}

func getStatusDisplays() map[order.Status]statusDisplay {
	return map[order.Status]statusDisplay{
		order.Pending: {
			label:       "Order Placed",
			description: "Your order has been received",
			color:       "yellow",
			message:     "Your order has been received",
		},
		order.Confirmed: {
			label:       "Confirmed",
			description: "Order confirmed by farmer",
			color:       "blue",
			message:     "Your order has been confirmed by the farmer",
		},
		order.Preparing: {
			label:       "Preparing",
			description: "Your order is being prepared",
			color:       "orange",
			message:     "Your order is being prepared",
		},
		order.Ready: {
			label:       "Ready",
			description: "Order is ready for pickup/delivery",
			color:       "purple",
			message:     "Your order is ready for pickup",
		},
		order.OutForDelivery: {
			label:       "Out for Delivery",
			description: "Order is on the way",
			color:       "indigo",
			message:     "Your order is out for delivery",
		},
		order.Delivered: {
			label:       "Delivered",
			description: "Order has been delivered",
			color:       "green",
			message:     "Your order has been delivered",
		},
		order.Cancelled: {
			label:       "Cancelled",
			description: "Order has been cancelled",
			color:       "red",
			message:     "Your order has been cancelled",
		},
	}
}

// fallbackDisplay is used for statuses without metadata.
var fallbackDisplay = statusDisplay{
	label:       "Unknown",
	description: "Order status is unavailable",
	color:       "gray",
	message:     "Your order status has been updated",
}

// ProgressStep is one row of the order tracking view.
type ProgressStep struct {
	Status      order.Status
	Label       string
	Description string
	Completed   bool
	Current     bool
}

// StatusPresenter derives display data from an order status.
//
// Example usage:
//
//	presenter := services.NewStatusPresenter()
//	for _, step := range presenter.Progress(o.Status()) {
//	    fmt.Printf("%-16s completed=%t current=%t\n", step.Label, step.Completed, step.Current)
//	}
type StatusPresenter struct{}

// NewStatusPresenter creates a new StatusPresenter instance.
func NewStatusPresenter() StatusPresenter {
	return StatusPresenter{}
}

func (StatusPresenter) display(status order.Status) statusDisplay {
	if d, ok := getStatusDisplays()[status]; ok {
		return d
	}
	return fallbackDisplay
}

// Label returns the human label, e.g. "Out for Delivery".
func (p StatusPresenter) Label(status order.Status) string {
	return p.display(status).label
}

// Description returns the one-line explanation shown under the label.
func (p StatusPresenter) Description(status order.Status) string {
	return p.display(status).description
}

// Color returns the badge colour used by the farmer console.
func (p StatusPresenter) Color(status order.Status) string {
	return p.display(status).color
}

// NotificationMessage returns the text sent to the customer when the order
// enters status.
func (p StatusPresenter) NotificationMessage(status order.Status) string {
	return p.display(status).message
}

// Progress returns one step per status of the canonical sequence.
//
// Steps up to and including the current status are completed, and the current
// one is also marked current. A cancelled order has no completed steps and ends
// with a current Cancelled step, since the stored order does not record where
// it was cancelled from.
func (p StatusPresenter) Progress(status order.Status) []ProgressStep {
	sequence := order.CanonicalSequence()
	steps := make([]ProgressStep, 0, len(sequence)+1)

	for _, s := range sequence {
		steps = append(steps, ProgressStep{
			Status:      s,
			Label:       p.Label(s),
			Description: p.Description(s),
			Completed:   s.Precedes(status) || s == status,
			Current:     s == status,
		})
	}

	if status == order.Cancelled {
		steps = append(steps, ProgressStep{
			Status:      order.Cancelled,
			Label:       p.Label(order.Cancelled),
			Description: p.Description(order.Cancelled),
			Current:     true,
		})
	}

	return steps
}

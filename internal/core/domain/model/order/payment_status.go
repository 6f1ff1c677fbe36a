package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentStatus mirrors the state reported by the payment provider.
// It is independent of Status and is never changed by status transitions.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%q is not a valid payment status", string(p)),
		)
	}
}

func (p PaymentStatus) String() string {
	return string(p)
}

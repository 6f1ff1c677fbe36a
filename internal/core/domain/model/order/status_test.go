package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 6, int(order.Delivered))
		assert.Equal(t, 7, int(order.Cancelled))
	})

	t.Run("should expose the canonical sequence as a copy", func(t *testing.T) {
		sequence := order.CanonicalSequence()
		assert.Equal(t, []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Ready, order.OutForDelivery, order.Delivered,
		}, sequence)

		sequence[0] = order.Cancelled
		assert.Equal(t, order.Pending, order.CanonicalSequence()[0])
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should return the following status for every non-terminal status", func(t *testing.T) {
		sequence := order.CanonicalSequence()
		for i := 0; i < len(sequence)-1; i++ {
			next, ok := sequence[i].Next()

			require.True(t, ok, "%s should have a successor", sequence[i])
			assert.Equal(t, sequence[i+1], next)
		}
	})

	t.Run("should return none for terminal and invalid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Delivered, order.Cancelled, order.Unknown, order.Status(42)} {
			next, ok := status.Next()

			assert.False(t, ok, "%d should have no successor", int(status))
			assert.Equal(t, order.Unknown, next)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{order.Delivered: true, order.Cancelled: true}

	for _, status := range append(order.CanonicalSequence(), order.Cancelled) {
		assert.Equal(t, terminal[status], status.IsTerminal(), status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate every defined status", func(t *testing.T) {
		for _, status := range append(order.CanonicalSequence(), order.Cancelled) {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(8)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip wire names", func(t *testing.T) {
		for _, status := range append(order.CanonicalSequence(), order.Cancelled) {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
		assert.Equal(t, "out_for_delivery", order.OutForDelivery.String())
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "Pending", "shipped"} {
			_, err := order.ParseStatus(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})
}

func TestStatus_Precedes(t *testing.T) {
	assert.True(t, order.Pending.Precedes(order.Preparing))
	assert.False(t, order.Preparing.Precedes(order.Preparing))
	assert.False(t, order.Ready.Precedes(order.Confirmed))
	assert.False(t, order.Cancelled.Precedes(order.Delivered))
}

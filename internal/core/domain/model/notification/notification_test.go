package notification_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderStatusNotification(t *testing.T) {
	t.Run("should create an unread unpublished notification", func(t *testing.T) {
		recipientID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		n, err := notification.NewOrderStatusNotification(recipientID, orderID, order.Ready, "Your order is ready for pickup")

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.True(t, n.RecipientID().IsEqual(recipientID))
		assert.True(t, n.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Ready, n.Status())
		assert.Equal(t, notification.TypeOrderStatus, n.Type())
		assert.Equal(t, "Order Status Update", n.Title())
		assert.False(t, n.IsRead())
		assert.False(t, n.IsPublished())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := notification.NewOrderStatusNotification(kernel.UUID{}, kernel.NewUUID(), order.Unknown, " ")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNotification_ZeroValue(t *testing.T) {
	var n notification.Notification

	require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
}

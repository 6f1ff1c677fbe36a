package memory_test

import (
	"context"
	"sync"
	"testing"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromString("6.25")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, price)
	require.NoError(t, err)
	address, err := kernel.NewAddress("3 Mill St", "Ithaca", "NY", "14850", "US")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, address, "")
	require.NoError(t, err)
	return o
}

func TestOrderRepository_CompareAndSetStatus(t *testing.T) {
	ctx := t.Context()

	t.Run("updates when the stored status matches", func(t *testing.T) {
		store := memory.NewStore()
		repo := store.Create().OrderRepository()
		o := newTestOrder(t)
		require.NoError(t, repo.Add(ctx, o))

		updated, err := repo.CompareAndSetStatus(ctx, o.ID(), order.Pending, order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, updated.Status())
		stored, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, stored.Status())
	})

	t.Run("reports a conflict for a stale expectation", func(t *testing.T) {
		store := memory.NewStore()
		repo := store.Create().OrderRepository()
		o := newTestOrder(t)
		require.NoError(t, repo.Add(ctx, o))
		_, err := repo.CompareAndSetStatus(ctx, o.ID(), order.Pending, order.Cancelled)
		require.NoError(t, err)

		_, err = repo.CompareAndSetStatus(ctx, o.ID(), order.Pending, order.Confirmed)

		require.ErrorIs(t, err, errs.ErrConcurrentModification)
	})

	t.Run("reports not found", func(t *testing.T) {
		repo := memory.NewStore().Create().OrderRepository()

		_, err := repo.CompareAndSetStatus(ctx, kernel.NewUUID(), order.Pending, order.Confirmed)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("only one of many concurrent writers wins", func(t *testing.T) {
		store := memory.NewStore()
		o := newTestOrder(t)
		require.NoError(t, store.Create().OrderRepository().Add(ctx, o))

		const writers = 16
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Create().OrderRepository().CompareAndSetStatus(ctx, o.ID(), order.Pending, order.Confirmed)
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
	})
}

func TestUnitOfWork_Rollback(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	o := newTestOrder(t)
	require.NoError(t, store.Create().OrderRepository().Add(ctx, o))

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	_, err := uow.OrderRepository().CompareAndSetStatus(ctx, o.ID(), order.Pending, order.Confirmed)
	require.NoError(t, err)
	n, err := notification.NewOrderStatusNotification(o.CustomerID(), o.ID(), order.Confirmed, "confirmed")
	require.NoError(t, err)
	require.NoError(t, uow.NotificationRepository().Add(ctx, n))

	require.NoError(t, uow.Rollback(ctx))

	stored, err := store.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, stored.Status())
	inbox, err := store.Notifications(o.CustomerID())
	require.NoError(t, err)
	assert.Empty(t, inbox)
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	uow := memory.NewStore().Create()

	require.ErrorIs(t, uow.Commit(context.Background()), errs.ErrValueIsRequired)
	require.ErrorIs(t, uow.Rollback(context.Background()), errs.ErrValueIsRequired)
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Create().NotificationRepository()
	recipientID := kernel.NewUUID()

	n, err := notification.NewOrderStatusNotification(recipientID, kernel.NewUUID(), order.Ready, "ready")
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, n))

	require.ErrorIs(t, repo.MarkRead(ctx, n.ID(), kernel.NewUUID()), errs.ErrObjectNotFound)
	require.NoError(t, repo.MarkRead(ctx, n.ID(), recipientID))

	pending, err := repo.FetchUnpublished(ctx, 5)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, repo.MarkPublished(ctx, n.ID()))
	pending, err = repo.FetchUnpublished(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, pending)

	inbox, err := store.Notifications(recipientID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.True(t, inbox[0].IsRead())
	assert.True(t, inbox[0].IsPublished())

	require.ErrorIs(t, repo.Delete(ctx, n.ID(), kernel.NewUUID()), errs.ErrObjectNotFound)
	require.NoError(t, repo.Delete(ctx, n.ID(), recipientID))
	inbox, err = store.Notifications(recipientID)
	require.NoError(t, err)
	assert.Empty(t, inbox)
}

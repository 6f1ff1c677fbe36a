// Package memory provides an in-process implementation of the storage ports.
// Writes apply to the shared Store immediately and are undone on Rollback, so
// a conditional status write is decided at the moment it is issued, as with a
// row-level update in PostgreSQL.
package memory

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// Store holds orders and notifications shared by every unit of work it creates.
type Store struct {
	mu            sync.RWMutex
	orders        map[kernel.UUID]order.Snapshot
	notifications map[kernel.UUID]notification.Snapshot
}

func NewStore() *Store {
	return &Store{
		orders:        make(map[kernel.UUID]order.Snapshot),
		notifications: make(map[kernel.UUID]notification.Snapshot),
	}
}

// Create implements ports.UnitOfWorkFactory.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// UnitOfWork records an undo step for every write made while a transaction is active.
type UnitOfWork struct {
	store  *Store
	active bool

	mu   sync.Mutex
	undo []func()
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.active = true
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active {
		return errs.NewValueIsRequiredError("active transaction")
	}
	u.active = false
	u.undo = nil
	return nil
}

// Rollback reverts the writes of the transaction in reverse order.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.mu.Lock()
	if !u.active {
		u.mu.Unlock()
		return errs.NewValueIsRequiredError("active transaction")
	}
	steps := u.undo
	u.active = false
	u.undo = nil
	u.mu.Unlock()

	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	for i := len(steps) - 1; i >= 0; i-- {
		steps[i]()
	}
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return &NotificationRepository{uow: u}
}

// record must be called with store.mu held.
func (u *UnitOfWork) record(step func()) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.active {
		u.undo = append(u.undo, step)
	}
}

// OrderRepository implements ports.OrderRepository over a Store.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order already exists")
	}

	id := aggregate.ID()
	s.orders[id] = snapshotOf(aggregate)
	r.uow.record(func() { delete(s.orders, id) })
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s := r.uow.store
	s.mu.RLock()
	snapshot, ok := s.orders[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(snapshot)
}

func (r *OrderRepository) CompareAndSetStatus(
	_ context.Context,
	id kernel.UUID,
	expected, newStatus order.Status,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	if previous.Status != expected {
		return nil, errs.NewConcurrentModificationError("order", id.String(), expected)
	}

	updated := previous
	updated.Status = newStatus
	updated.UpdatedAt = time.Now().UTC()
	s.orders[id] = updated
	r.uow.record(func() { s.orders[id] = previous })

	return order.RestoreOrder(updated)
}

func snapshotOf(o *order.Order) order.Snapshot {
	return order.Snapshot{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		Items:           o.Items(),
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status(),
		PaymentStatus:   o.PaymentStatus(),
		DeliveryAddress: o.DeliveryAddress(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

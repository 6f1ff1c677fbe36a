package memory

import (
	"context"
	"sort"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"
)

// NotificationRepository implements ports.NotificationRepository over a Store.
type NotificationRepository struct {
	uow *UnitOfWork
}

func (r *NotificationRepository) Add(_ context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	id := n.ID()
	s.notifications[id] = notification.Snapshot{
		ID:          id,
		RecipientID: n.RecipientID(),
		OrderID:     n.OrderID(),
		Status:      n.Status(),
		Message:     n.Message(),
		Read:        n.IsRead(),
		CreatedAt:   n.CreatedAt(),
		PublishedAt: n.PublishedAt(),
	}
	r.uow.record(func() { delete(s.notifications, id) })
	return nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id, recipientID kernel.UUID) error {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.notifications[id]
	if !ok || !previous.RecipientID.IsEqual(recipientID) {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	updated := previous
	updated.Read = true
	s.notifications[id] = updated
	r.uow.record(func() { s.notifications[id] = previous })
	return nil
}

func (r *NotificationRepository) Delete(_ context.Context, id, recipientID kernel.UUID) error {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.notifications[id]
	if !ok || !previous.RecipientID.IsEqual(recipientID) {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	delete(s.notifications, id)
	r.uow.record(func() { s.notifications[id] = previous })
	return nil
}

func (r *NotificationRepository) FetchUnpublished(_ context.Context, limit int) ([]*notification.Notification, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	s := r.uow.store
	s.mu.RLock()
	pending := make([]notification.Snapshot, 0)
	for _, snapshot := range s.notifications {
		if snapshot.PublishedAt == nil {
			pending = append(pending, snapshot)
		}
	}
	s.mu.RUnlock()

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}

	result := make([]*notification.Notification, 0, len(pending))
	for _, snapshot := range pending {
		n, err := notification.RestoreNotification(snapshot)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

func (r *NotificationRepository) MarkPublished(_ context.Context, id kernel.UUID) error {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.notifications[id]
	if !ok {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	if previous.PublishedAt != nil {
		return nil
	}

	now := time.Now().UTC()
	updated := previous
	updated.PublishedAt = &now
	s.notifications[id] = updated
	r.uow.record(func() { s.notifications[id] = previous })
	return nil
}

// Notifications returns the inbox of recipientID, newest first.
func (s *Store) Notifications(recipientID kernel.UUID) ([]*notification.Notification, error) {
	s.mu.RLock()
	snapshots := make([]notification.Snapshot, 0)
	for _, snapshot := range s.notifications {
		if snapshot.RecipientID.IsEqual(recipientID) {
			snapshots = append(snapshots, snapshot)
		}
	}
	s.mu.RUnlock()

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].CreatedAt.After(snapshots[j].CreatedAt)
	})

	result := make([]*notification.Notification, 0, len(snapshots))
	for _, snapshot := range snapshots {
		n, err := notification.RestoreNotification(snapshot)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

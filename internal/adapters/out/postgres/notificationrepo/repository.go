package notificationrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(n.ID(), n)
	return nil
}

// MarkRead flags the recipient's notification as read. Marking twice is not an error.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, id, recipientID kernel.UUID) error {
	if err := errors.Join(id.Validate(), recipientID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ? AND user_id = ?", id.Bytes(), recipientID.Bytes()).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	return nil
}

// Delete removes the recipient's notification.
func (r *GormNotificationRepository) Delete(ctx context.Context, id, recipientID kernel.UUID) error {
	if err := errors.Join(id.Validate(), recipientID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id.Bytes(), recipientID.Bytes()).
		Delete(&NotificationDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	return nil
}

// FetchUnpublished returns the oldest notifications not yet relayed.
func (r *GormNotificationRepository) FetchUnpublished(ctx context.Context, limit int) ([]*notification.Notification, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []NotificationDTO
	if err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkPublished stamps the relay time. A notification already published keeps its first stamp.
func (r *GormNotificationRepository) MarkPublished(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ? AND published_at IS NULL", id.Bytes()).
		Update("published_at", time.Now().UTC())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&NotificationDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("notification", id.String())
		}
	}
	return nil
}

// Package notificationrepo persists customer inbox notifications and their
// relay state.
package notificationrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// NotificationDTO represents a row of the notifications table. PublishedAt is
// null until the relay job has written the notification to the event stream.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type        string     `gorm:"type:varchar(50);not null"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Message     string     `gorm:"type:text;not null"`
	Status      int        `gorm:"type:smallint;not null"`
	Read        bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		UserID:      n.RecipientID().Bytes(),
		OrderID:     n.OrderID().Bytes(),
		Type:        n.Type(),
		Title:       n.Title(),
		Message:     n.Message(),
		Status:      int(n.Status()),
		Read:        n.IsRead(),
		CreatedAt:   n.CreatedAt(),
		PublishedAt: n.PublishedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(notification.Snapshot{
		ID:          id,
		RecipientID: recipientID,
		OrderID:     orderID,
		Status:      order.Status(dto.Status),
		Message:     dto.Message,
		Read:        dto.Read,
		CreatedAt:   dto.CreatedAt,
		PublishedAt: dto.PublishedAt,
	})
}

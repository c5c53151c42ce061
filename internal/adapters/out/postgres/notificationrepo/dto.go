// Package notificationrepo hands notifications to the push service through the
// notifications table, which the push service consumes.
package notificationrepo

import (
	"time"

	"errand/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDTO is one row of the notifications table. DedupKey is unique so the
// same reminder is never queued twice.
type NotificationDTO struct {
	ID        uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID                             `gorm:"type:uuid;index;not null"`
	Type      string                                `gorm:"type:varchar(32);not null"`
	Title     string                                `gorm:"type:text;not null"`
	Body      string                                `gorm:"type:text;not null"`
	Data      datatypes.JSONType[notification.Data] `gorm:"type:jsonb;not null"`
	DedupKey  string                                `gorm:"type:varchar(128);uniqueIndex;not null"`
	CreatedAt time.Time                             `gorm:"not null;autoCreateTime:false"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Body:      n.Body(),
		Data:      datatypes.NewJSONType(n.Data()),
		DedupKey:  n.Key(),
		CreatedAt: n.CreatedAt(),
	}
}

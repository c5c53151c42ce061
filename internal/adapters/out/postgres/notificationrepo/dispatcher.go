package notificationrepo

import (
	"context"
	"fmt"

	"errand/internal/core/domain/model/notification"
	"errand/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationDispatcher queues notifications as rows. A row whose key already
// exists is left untouched and reported as ports.ErrNotificationAlreadyDispatched.
type GormNotificationDispatcher struct {
	db *gorm.DB
}

func NewGormNotificationDispatcher(db *gorm.DB) *GormNotificationDispatcher {
	return &GormNotificationDispatcher{db: db}
}

func (d *GormNotificationDispatcher) Dispatch(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dedup_key"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ports.ErrNotificationAlreadyDispatched, dto.DedupKey)
	}

	return nil
}

package postgres

import (
	"errand/internal/adapters/out/postgres/draftrepo"
	"errand/internal/adapters/out/postgres/escrowrepo"
	"errand/internal/adapters/out/postgres/notificationrepo"
	"errand/internal/adapters/out/postgres/orderrepo"
	"errand/internal/adapters/out/postgres/sweeprepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StageDTO{},
		&escrowrepo.TransactionDTO{},
		&draftrepo.SessionDTO{},
		&notificationrepo.NotificationDTO{},
		&sweeprepo.WatermarkDTO{},
	)
}

// Package sweeprepo makes periodic sweeps single-flight across processes with a
// transaction-scoped advisory lock and a watermark row per sweep name.
package sweeprepo

import (
	"context"
	"errors"
	"time"

	"errand/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WatermarkDTO records when a sweep last completed.
type WatermarkDTO struct {
	Name    string    `gorm:"type:varchar(64);primaryKey"`
	SweptAt time.Time `gorm:"not null"`
}

func (WatermarkDTO) TableName() string {
	return "sweep_watermarks"
}

// GormSweepLocker implements ports.SweepLocker. The lease keeps a transaction open
// for the whole sweep; the advisory lock is released when it ends.
type GormSweepLocker struct {
	db *gorm.DB
}

func NewGormSweepLocker(db *gorm.DB) *GormSweepLocker {
	return &GormSweepLocker{db: db}
}

func (l *GormSweepLocker) Acquire(
	ctx context.Context,
	name string,
	now time.Time,
	minInterval time.Duration,
) (ports.SweepLease, bool, error) {
	tx := l.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, false, tx.Error
	}

	var locked bool
	if err := tx.Raw("SELECT pg_try_advisory_xact_lock(hashtext(?))", name).Scan(&locked).Error; err != nil {
		tx.Rollback()
		return nil, false, err
	}

	if !locked {
		tx.Rollback()
		return nil, false, nil
	}

	var watermark WatermarkDTO
	err := tx.First(&watermark, "name = ?", name).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		tx.Rollback()
		return nil, false, err
	case !now.After(watermark.SweptAt), now.Sub(watermark.SweptAt) < minInterval:
		tx.Rollback()
		return nil, false, nil
	}

	return &gormSweepLease{tx: tx, name: name}, true, nil
}

type gormSweepLease struct {
	tx   *gorm.DB
	name string
	done bool
}

// Complete stores sweptAt as the watermark and commits, which releases the lock.
func (l *gormSweepLease) Complete(ctx context.Context, sweptAt time.Time) error {
	if l.done {
		return gorm.ErrInvalidTransaction
	}
	l.done = true

	err := l.tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"swept_at"}),
		}).
		Create(&WatermarkDTO{Name: l.name, SweptAt: sweptAt}).Error
	if err != nil {
		l.tx.Rollback()
		return err
	}

	return l.tx.Commit().Error
}

// Release ends the sweep without moving the watermark.
// Releasing twice, or after Complete, is a no-op.
func (l *gormSweepLease) Release(_ context.Context) error {
	if l.done {
		return nil
	}
	l.done = true

	return l.tx.Rollback().Error
}

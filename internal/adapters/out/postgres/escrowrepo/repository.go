package escrowrepo

import (
	"context"

	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormEscrowRepository implements EscrowRepository using GORM.
type GormEscrowRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormEscrowRepository(db *gorm.DB, tracker aggregateTracker) *GormEscrowRepository {
	return &GormEscrowRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a ledger entry.
func (r *GormEscrowRepository) Add(ctx context.Context, tx *escrow.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	dto := fromDomain(tx)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(tx.ID(), tx)
	return nil
}

// ListByOrder returns the ledger of one order in the order entries were written.
func (r *GormEscrowRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*escrow.Transaction, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	txs := make([]*escrow.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}

	return txs, nil
}

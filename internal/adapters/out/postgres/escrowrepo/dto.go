// Package escrowrepo persists escrow ledger entries. Entries are append-only: a
// release or refund is a new row, never an update of the hold.
package escrowrepo

import (
	"time"

	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDTO is the escrow_transactions table.
type TransactionDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Type        string          `gorm:"type:varchar(16);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"type:char(3);not null"`
	Status      string          `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime:false"`
	CompletedAt *time.Time
}

func (TransactionDTO) TableName() string {
	return "escrow_transactions"
}

func fromDomain(t *escrow.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          t.ID().Bytes(),
		OrderID:     t.OrderID().Bytes(),
		Type:        string(t.Type()),
		Amount:      t.Amount().Amount(),
		Currency:    t.Amount().Currency(),
		Status:      string(t.Status()),
		CreatedAt:   t.CreatedAt(),
		CompletedAt: t.CompletedAt(),
	}
}

func toDomain(dto TransactionDTO) (*escrow.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount, dto.Currency)
	if err != nil {
		return nil, err
	}

	return escrow.RestoreTransaction(
		id,
		orderID,
		escrow.Type(dto.Type),
		amount,
		escrow.Status(dto.Status),
		dto.CreatedAt,
		dto.CompletedAt,
	)
}

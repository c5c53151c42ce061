package ports

import (
	"context"

	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"
)

// EscrowRepository stores the escrow ledger. Entries are append-only.
type EscrowRepository interface {
	Add(ctx context.Context, tx *escrow.Transaction) error

	// ListByOrder returns every entry of the order in creation order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*escrow.Transaction, error)
}

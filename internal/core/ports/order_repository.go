package ports

import (
	"context"
	"time"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always stored together with its items and stages.
type OrderRepository interface {
	// Add persists a new order: the order row first, then its items, then its stages.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, escrow status, notes, timestamps and stage statuses.
	// Items are immutable and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and stages.
	// Returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get under a row lock held until the surrounding transaction
	// ends. Every read that precedes a write of the order or its escrow ledger uses it,
	// so concurrent changes to one order are applied one after another.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllCompletedUpdatedBefore returns completed orders with updated_at <= threshold,
	// oldest first. Used to find orders whose pickup window has elapsed.
	GetAllCompletedUpdatedBefore(ctx context.Context, threshold time.Time) ([]*order.Order, error)

	// GetAllCompletedUpdatedBetween returns completed orders with after < updated_at <= upTo,
	// oldest first.
	GetAllCompletedUpdatedBetween(ctx context.Context, after, upTo time.Time) ([]*order.Order, error)
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/core/domain/services"
	"errand/internal/core/ports"
)

// ErrOrderCreationFailed matches every OrderCreationFailedError.
var ErrOrderCreationFailed = errors.New("order creation failed")

// OrderCreationFailedError is returned when an order could not be persisted after
// validation passed. The transaction was rolled back: no order row, item, stage or
// escrow entry of the attempt is visible.
type OrderCreationFailedError struct {
	OrderID kernel.UUID
	Cause   error
}

func (e *OrderCreationFailedError) Error() string {
	return fmt.Sprintf("order %s creation failed: %v", e.OrderID, e.Cause)
}

func (e *OrderCreationFailedError) Unwrap() []error {
	return []error{ErrOrderCreationFailed, e.Cause}
}

func newOrderCreationFailedError(orderID kernel.UUID, cause error) error {
	return &OrderCreationFailedError{OrderID: orderID, Cause: cause}
}

// buildOrder plans the stages and assembles the aggregate. It is pure, so an
// invalid order type fails before any transaction is opened.
func buildOrder(sequencer services.StageSequencer, cmd CreateOrderCommand, now time.Time) (*order.Order, error) {
	header := cmd.Header()

	stages, err := sequencer.ComputeStages(header.Type(), header.Pickup(), header.Dropoff())
	if err != nil {
		return nil, err
	}

	return order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), header, cmd.Items(), stages, now)
}

// persistNewOrder writes the order, its items and stages, then places the escrow
// hold when the order requires one. Must run inside a transaction.
func persistNewOrder(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	escrowRepo ports.EscrowRepository,
	ledger services.EscrowLedger,
	o *order.Order,
	now time.Time,
) error {
	if err := orderRepo.Add(ctx, o); err != nil {
		return err
	}

	if !o.RequiresEscrowHold() {
		return nil
	}

	return placeHold(ctx, orderRepo, escrowRepo, ledger, o, now)
}

// placeHold reserves the order total, records the ledger entry and marks the order.
func placeHold(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	escrowRepo ports.EscrowRepository,
	ledger services.EscrowLedger,
	o *order.Order,
	now time.Time,
) error {
	amount, err := o.HoldAmount()
	if err != nil {
		return err
	}

	hold, err := ledger.PlaceHold(o.ID(), amount, now)
	if err != nil {
		return err
	}

	if err = escrowRepo.Add(ctx, hold); err != nil {
		return err
	}

	if err = o.MarkEscrowHeld(now); err != nil {
		return err
	}

	return orderRepo.Update(ctx, o)
}

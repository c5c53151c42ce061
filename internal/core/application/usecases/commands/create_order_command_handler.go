package commands

import (
	"context"
	"time"

	"errand/internal/core/domain/model/order"
	"errand/internal/core/domain/services"
)

// CreateOrderCommandHandler turns a validated request into a persisted order.
//
// Creation is all-or-nothing: the order row, its items, its stages and, for
// non-draft orders with a positive total, the escrow hold are written in one
// transaction. Any failure after the transaction began is returned as an
// OrderCreationFailedError and leaves no trace in storage.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderCreationFailed) {
//	    // storage failure, safe to retry
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderEscrowUoWFactory
	sequencer  services.StageSequencer
	ledger     services.EscrowLedger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderEscrowUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewStageSequencer(),
		ledger:     services.NewEscrowLedger(),
	}
}

// Handle validates the command, plans the stages and persists the order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	o, err := buildOrder(h.sequencer, cmd, now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, newOrderCreationFailedError(o.ID(), err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = persistNewOrder(ctx, uow.OrderRepository(), uow.EscrowRepository(), h.ledger, o, now); err != nil {
		return nil, newOrderCreationFailedError(o.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, newOrderCreationFailedError(o.ID(), err)
	}

	return o, nil
}

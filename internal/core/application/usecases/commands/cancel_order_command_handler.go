package commands

import (
	"context"
	"time"

	"errand/internal/core/domain/model/order"
	"errand/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order and its open stages. When funds are
// held, whatever balance is left is refunded through the ledger in the same
// transaction and the order escrow becomes refunded.
type CancelOrderCommandHandler struct {
	uowFactory OrderEscrowUoWFactory
	ledger     services.EscrowLedger
}

func NewCancelOrderCommandHandler(uowFactory OrderEscrowUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewEscrowLedger(),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err = o.Cancel(cmd.Reason(), now); err != nil {
		return nil, err
	}

	if o.EscrowStatus() == order.EscrowHeld {
		if err = h.refundBalance(ctx, uow, o, now); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *CancelOrderCommandHandler) refundBalance(ctx context.Context, uow OrderEscrowUoW, o *order.Order, now time.Time) error {
	escrowRepo := uow.EscrowRepository()

	history, err := escrowRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	balance, err := h.ledger.Balance(o.ID(), history)
	if err != nil {
		return err
	}

	if balance.IsPositive() {
		refund, refundErr := h.ledger.Refund(o.ID(), balance, history, now)
		if refundErr != nil {
			return refundErr
		}
		if err = escrowRepo.Add(ctx, refund); err != nil {
			return err
		}
	}

	return o.MarkEscrowSettled(order.EscrowRefunded)
}

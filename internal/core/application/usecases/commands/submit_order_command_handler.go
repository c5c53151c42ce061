package commands

import (
	"context"
	"time"

	"errand/internal/core/domain/model/order"
	"errand/internal/core/domain/services"
)

// SubmitOrderCommandHandler moves a draft to payment_pending. An order with a
// positive total gets its escrow hold in the same transaction, so a draft never
// holds funds and a submitted order never lacks them.
type SubmitOrderCommandHandler struct {
	uowFactory OrderEscrowUoWFactory
	ledger     services.EscrowLedger
}

func NewSubmitOrderCommandHandler(uowFactory OrderEscrowUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewEscrowLedger(),
	}
}

func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
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
	if err = o.Submit(now); err != nil {
		return nil, err
	}

	if o.RequiresEscrowHold() {
		err = placeHold(ctx, orderRepo, uow.EscrowRepository(), h.ledger, o, now)
	} else {
		err = orderRepo.Update(ctx, o)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

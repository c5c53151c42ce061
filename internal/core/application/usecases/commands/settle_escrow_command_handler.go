package commands

import (
	"context"
	"fmt"
	"time"

	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/order"
	"errand/internal/core/domain/services"
	"errand/internal/pkg/errs"
)

// SettleEscrowCommandHandler appends a release or refund entry to the ledger.
// When the remaining balance reaches zero the order escrow status follows the
// kind of the final entry.
type SettleEscrowCommandHandler struct {
	uowFactory OrderEscrowUoWFactory
	ledger     services.EscrowLedger
}

func NewSettleEscrowCommandHandler(uowFactory OrderEscrowUoWFactory) SettleEscrowCommandHandler {
	return SettleEscrowCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewEscrowLedger(),
	}
}

func (h *SettleEscrowCommandHandler) Handle(ctx context.Context, cmd SettleEscrowCommand) (*escrow.Transaction, error) {
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
	escrowRepo := uow.EscrowRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if o.EscrowStatus() != order.EscrowHeld {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"escrow status is invalid",
			fmt.Errorf("order %s escrow is %s, expected held", o.ID(), o.EscrowStatus()),
		)
	}

	history, err := escrowRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var entry *escrow.Transaction
	if cmd.Kind() == escrow.Release {
		entry, err = h.ledger.Release(o.ID(), cmd.Amount(), history, now)
	} else {
		entry, err = h.ledger.Refund(o.ID(), cmd.Amount(), history, now)
	}
	if err != nil {
		return nil, err
	}

	if err = escrowRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	balance, err := h.ledger.Balance(o.ID(), append(history, entry))
	if err != nil {
		return nil, err
	}

	if !balance.IsPositive() {
		settled := order.EscrowReleased
		if cmd.Kind() == escrow.Refund {
			settled = order.EscrowRefunded
		}
		if err = o.MarkEscrowSettled(settled); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

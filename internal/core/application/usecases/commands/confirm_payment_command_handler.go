package commands

import (
	"context"
	"time"

	"errand/internal/core/domain/model/order"
)

// ConfirmPaymentCommandHandler marks a payment_pending order as paid.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ConfirmPayment(time.Now().UTC())
	})
}

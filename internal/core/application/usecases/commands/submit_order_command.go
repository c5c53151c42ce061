package commands

import (
	"errors"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand moves a draft order to payment and reserves its total.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(orderID kernel.UUID) (SubmitOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

package commands

import (
	"errors"
	"fmt"

	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"
	"errand/internal/pkg/guard"
)

var ErrSettleEscrowCommandIsNotConstructed = errors.New(
	"SettleEscrowCommand must be created via NewSettleEscrowCommand constructor",
)

// SettleEscrowCommand releases held funds to fulfilment or refunds them to the
// customer. Partial amounts are allowed; the escrow is settled once nothing is held.
type SettleEscrowCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    escrow.Type
	amount  kernel.Money

	guard guard.ConstructorGuard
}

func NewSettleEscrowCommand(orderID kernel.UUID, kind escrow.Type, amount kernel.Money) (SettleEscrowCommand, error) {
	cmd := SettleEscrowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKind(kind),
		cmd.setAmount(amount),
	); err != nil {
		return SettleEscrowCommand{}, err
	}

	return cmd, nil
}

func (c SettleEscrowCommand) Validate() error {
	return c.guard.Validate(ErrSettleEscrowCommandIsNotConstructed)
}

func (c SettleEscrowCommand) OrderID() kernel.UUID { return c.orderID }
func (c SettleEscrowCommand) Kind() escrow.Type    { return c.kind }
func (c SettleEscrowCommand) Amount() kernel.Money { return c.amount }

func (c *SettleEscrowCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SettleEscrowCommand) setKind(kind escrow.Type) error {
	if kind != escrow.Release && kind != escrow.Refund {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not release or refund", string(kind)))
	}

	c.kind = kind
	return nil
}

func (c *SettleEscrowCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", escrow.ErrInvalidAmount, amount)
	}

	c.amount = amount
	return nil
}

package services

import (
	"fmt"
	"time"

	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// EscrowLedger creates escrow ledger entries and enforces the balance rule: completed
// holds minus completed releases and refunds never go negative.
//
// The ledger does not decide whether an order may be held; the lifecycle handlers
// only call PlaceHold for orders that left Draft with a positive total.
type EscrowLedger struct{}

func NewEscrowLedger() EscrowLedger {
	return EscrowLedger{}
}

// PlaceHold reserves amount for the order and returns the completed hold entry.
func (EscrowLedger) PlaceHold(orderID kernel.UUID, amount kernel.Money, now time.Time) (*escrow.Transaction, error) {
	return newCompleted(orderID, escrow.Hold, amount, now)
}

// Release pays out part or all of the held balance.
func (l EscrowLedger) Release(
	orderID kernel.UUID,
	amount kernel.Money,
	history []*escrow.Transaction,
	now time.Time,
) (*escrow.Transaction, error) {
	return l.settle(orderID, escrow.Release, amount, history, now)
}

// Refund returns part or all of the held balance to the customer.
func (l EscrowLedger) Refund(
	orderID kernel.UUID,
	amount kernel.Money,
	history []*escrow.Transaction,
	now time.Time,
) (*escrow.Transaction, error) {
	return l.settle(orderID, escrow.Refund, amount, history, now)
}

// Balance is the amount still held for the order. It fails with escrow.ErrNoHold
// when the history has no completed hold.
func (EscrowLedger) Balance(orderID kernel.UUID, history []*escrow.Transaction) (kernel.Money, error) {
	var (
		currency string
		held     = decimal.Zero
		settled  = decimal.Zero
	)

	for _, tx := range history {
		if !tx.IsCompleted() || !tx.OrderID().IsEqual(orderID) {
			continue
		}
		switch tx.Type() {
		case escrow.Hold:
			if currency == "" {
				currency = tx.Amount().Currency()
			}
			held = held.Add(tx.Amount().Amount())
		case escrow.Release, escrow.Refund:
			settled = settled.Add(tx.Amount().Amount())
		}
	}

	if currency == "" {
		return kernel.Money{}, fmt.Errorf("%w: order %s", escrow.ErrNoHold, orderID)
	}

	balance := held.Sub(settled)
	if balance.IsNegative() {
		return kernel.Money{}, fmt.Errorf("%w: order %s is %s below zero", escrow.ErrOverRelease, orderID, balance.Neg())
	}

	return kernel.NewMoney(balance, currency)
}

func (l EscrowLedger) settle(
	orderID kernel.UUID,
	txType escrow.Type,
	amount kernel.Money,
	history []*escrow.Transaction,
	now time.Time,
) (*escrow.Transaction, error) {
	if err := amount.Validate(); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", escrow.ErrInvalidAmount, amount)
	}

	balance, err := l.Balance(orderID, history)
	if err != nil {
		return nil, err
	}

	exceeds, err := amount.GreaterThan(balance)
	if err != nil {
		return nil, err
	}
	if exceeds {
		return nil, fmt.Errorf("%w: %s requested, %s held", escrow.ErrOverRelease, amount, balance)
	}

	return newCompleted(orderID, txType, amount, now)
}

func newCompleted(orderID kernel.UUID, txType escrow.Type, amount kernel.Money, now time.Time) (*escrow.Transaction, error) {
	tx, err := escrow.NewTransaction(kernel.NewUUID(), orderID, txType, amount, now)
	if err != nil {
		return nil, err
	}
	if err = tx.Complete(now); err != nil {
		return nil, err
	}
	return tx, nil
}

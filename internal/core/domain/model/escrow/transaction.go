// Package escrow models the ledger entries that reserve and settle an order's total.
package escrow

import (
	"errors"
	"fmt"
	"time"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"
)

var (
	ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")

	// ErrInvalidAmount is returned for non-positive hold, release or refund amounts.
	ErrInvalidAmount = errors.New("escrow amount must be positive")

	// ErrOverRelease is returned when a release or refund exceeds the held balance.
	ErrOverRelease = errors.New("escrow release exceeds held balance")

	// ErrNoHold is returned when settling an order that has no completed hold.
	ErrNoHold = errors.New("order has no completed escrow hold")
)

// Type is the kind of ledger entry.
type Type string

const (
	Hold    Type = "hold"
	Release Type = "release"
	Refund  Type = "refund"
)

func (t Type) Validate() error {
	switch t {
	case Hold, Release, Refund:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transaction_type", fmt.Errorf("%q is not a valid transaction type", string(t)))
	}
}

// Status of a ledger entry. Only completed entries count toward the balance.
type Status string

const (
	Pending   Status = "pending"
	Completed Status = "completed"
	Failed    Status = "failed"
)

func (s Status) Validate() error {
	switch s {
	case Pending, Completed, Failed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transaction status", fmt.Errorf("%q is not a valid transaction status", string(s)))
	}
}

// Transaction is one escrow ledger entry bound to an order.
type Transaction struct {
	id          kernel.UUID
	orderID     kernel.UUID
	txType      Type
	amount      kernel.Money
	status      Status
	createdAt   time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewTransaction creates a pending entry. Amounts must be positive.
func NewTransaction(id, orderID kernel.UUID, txType Type, amount kernel.Money, now time.Time) (*Transaction, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), txType.Validate(), amount.Validate()); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	return &Transaction{
		id:            id,
		orderID:       orderID,
		txType:        txType,
		amount:        amount,
		status:        Pending,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreTransaction rebuilds an entry from storage.
func RestoreTransaction(
	id, orderID kernel.UUID,
	txType Type,
	amount kernel.Money,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		txType.Validate(),
		amount.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Transaction{
		id:            id,
		orderID:       orderID,
		txType:        txType,
		amount:        amount,
		status:        status,
		createdAt:     createdAt,
		completedAt:   completedAt,
		isConstructed: true,
	}, nil
}

func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

func (t *Transaction) ID() kernel.UUID         { return t.id }
func (t *Transaction) OrderID() kernel.UUID    { return t.orderID }
func (t *Transaction) Type() Type              { return t.txType }
func (t *Transaction) Amount() kernel.Money    { return t.amount }
func (t *Transaction) Status() Status          { return t.status }
func (t *Transaction) CreatedAt() time.Time    { return t.createdAt }
func (t *Transaction) CompletedAt() *time.Time { return t.completedAt }

// IsCompleted reports whether the entry counts toward the balance.
func (t *Transaction) IsCompleted() bool {
	return t.status == Completed
}

// Complete settles a pending entry.
func (t *Transaction) Complete(now time.Time) error {
	if t.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("transaction status", fmt.Errorf("cannot complete a %s transaction", t.status))
	}
	t.status = Completed
	t.completedAt = &now
	return nil
}

// Fail marks a pending entry as failed.
func (t *Transaction) Fail() error {
	if t.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("transaction status", fmt.Errorf("cannot fail a %s transaction", t.status))
	}
	t.status = Failed
	return nil
}

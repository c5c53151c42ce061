package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEscrowHoldNotAllowed is returned when a hold is recorded for a draft order,
	// an order without a positive total, or an order that already has escrow activity.
	ErrEscrowHoldNotAllowed = errors.New("escrow hold is not allowed for this order")

	// ErrNoActiveStage is returned when an in-progress order has no running stage.
	ErrNoActiveStage = errors.New("order has no active stage")
)

// Order is the aggregate root of an errand: the customer's request, its line items,
// the fulfilment stages and the escrow status of the quoted total.
//
// Order follows these invariants:
//   - Items and stages are created together with the order and belong to it
//   - Stage sequence numbers form a contiguous run starting at 1
//   - Exactly one dropoff stage exists, unless the order is an onsite service
//   - EscrowHeld implies the order has left Draft and has a positive total
//   - Status transitions follow the Status state machine
//
// Order keeps its fields private; use NewOrder for new requests and RestoreOrder
// when loading from storage.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	orderType    Type
	status       Status
	escrowStatus EscrowStatus

	totals   Totals
	currency string

	// pickup is nil when the customer did not name a pickup point
	pickup  *kernel.Location
	dropoff kernel.Location
	notes   string

	items  []*Item
	stages []*Stage

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder builds a new order from a validated header, its line items and the stage
// plan computed by the StageSequencer.
//
// Parameters:
//   - id, customerID: identifiers of the order and the requesting customer
//   - header: the order header (type, initial status, totals, locations)
//   - items: at least one line item
//   - stages: the planned stages, ordered by sequence number
//   - now: creation time, used for both timestamps
//
// The escrow status starts as EscrowNone; placing the hold is a separate step so
// that it can be persisted after the order row exists.
func NewOrder(
	id, customerID kernel.UUID,
	header Header,
	items []ItemSpec,
	stages []StageSpec,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		header.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	if err := validateStagePlan(header.Type(), stages); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		customerID:    customerID,
		orderType:     header.Type(),
		status:        header.Status(),
		escrowStatus:  EscrowNone,
		totals:        header.Totals(),
		currency:      header.Currency(),
		pickup:        header.Pickup(),
		dropoff:       header.Dropoff(),
		notes:         header.Notes(),
		items:         make([]*Item, 0, len(items)),
		stages:        make([]*Stage, 0, len(stages)),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	for _, spec := range items {
		item, err := NewItem(kernel.NewUUID(), id, spec)
		if err != nil {
			return nil, err
		}
		o.items = append(o.items, item)
	}

	for _, spec := range stages {
		stage, err := NewStage(kernel.NewUUID(), id, spec)
		if err != nil {
			return nil, err
		}
		o.stages = append(o.stages, stage)
	}

	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Type         Type
	Status       Status
	EscrowStatus EscrowStatus
	Totals       Totals
	Currency     string
	Pickup       *kernel.Location
	Dropoff      kernel.Location
	Notes        string
	Items        []*Item
	Stages       []*Stage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RestoreOrder rebuilds an order loaded from storage. Stages are sorted by sequence
// number; the stage plan itself is not re-validated because canceled orders may
// legitimately hold canceled stages only.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.Type.Validate(),
		s.Status.Validate(),
		s.EscrowStatus.Validate(),
		s.Dropoff.Validate(),
		validateOptionalLocation(s.Pickup),
	); err != nil {
		return nil, err
	}

	if s.EscrowStatus == EscrowHeld && s.Status == Draft {
		return nil, fmt.Errorf("%w: draft order %s has a held escrow", ErrEscrowHoldNotAllowed, s.ID)
	}

	stages := slices.Clone(s.Stages)
	slices.SortFunc(stages, func(a, b *Stage) int { return a.SequenceNo() - b.SequenceNo() })

	return &Order{
		id:            s.ID,
		customerID:    s.CustomerID,
		orderType:     s.Type,
		status:        s.Status,
		escrowStatus:  s.EscrowStatus,
		totals:        s.Totals,
		currency:      s.Currency,
		pickup:        s.Pickup,
		dropoff:       s.Dropoff,
		notes:         s.Notes,
		items:         slices.Clone(s.Items),
		stages:        stages,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID            { return o.id }
func (o *Order) CustomerID() kernel.UUID    { return o.customerID }
func (o *Order) Type() Type                 { return o.orderType }
func (o *Order) Status() Status             { return o.status }
func (o *Order) EscrowStatus() EscrowStatus { return o.escrowStatus }
func (o *Order) Totals() Totals             { return o.totals }
func (o *Order) Currency() string           { return o.currency }
func (o *Order) Pickup() *kernel.Location   { return o.pickup }
func (o *Order) Dropoff() kernel.Location   { return o.dropoff }
func (o *Order) Notes() string              { return o.notes }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) UpdatedAt() time.Time       { return o.updatedAt }

// Items returns a copy of the line items.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// Stages returns a copy of the stages ordered by sequence number.
func (o *Order) Stages() []*Stage {
	return slices.Clone(o.stages)
}

// CurrentStage returns the stage in progress, or nil.
func (o *Order) CurrentStage() *Stage {
	for _, s := range o.stages {
		if s.Status() == StageInProgress {
			return s
		}
	}
	return nil
}

// HoldAmount is the quoted total expressed as Money.
func (o *Order) HoldAmount() (kernel.Money, error) {
	return kernel.NewMoney(o.totals.Total(), o.currency)
}

// RequiresEscrowHold reports whether the total must be reserved now: the order has
// left Draft, has a positive total, and no escrow activity was recorded yet.
func (o *Order) RequiresEscrowHold() bool {
	return o.status != Draft && o.totals.HasTotal() && o.escrowStatus == EscrowNone
}

// MarkEscrowHeld records that the ledger placed a hold for the total.
func (o *Order) MarkEscrowHeld(now time.Time) error {
	if !o.RequiresEscrowHold() {
		return fmt.Errorf("%w: status %s, escrow %s", ErrEscrowHoldNotAllowed, o.status, o.escrowStatus)
	}
	o.escrowStatus = EscrowHeld
	o.updatedAt = now
	return nil
}

// MarkEscrowSettled records that the held balance was fully released or refunded.
// updatedAt is left alone: it dates the last lifecycle change and anchors the pickup window.
func (o *Order) MarkEscrowSettled(settled EscrowStatus) error {
	if settled != EscrowReleased && settled != EscrowRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"escrow status is invalid",
			fmt.Errorf("%s is not a settlement status", settled),
		)
	}
	if o.escrowStatus != EscrowHeld {
		return errs.NewValueIsInvalidErrorWithCause(
			"escrow status is invalid",
			fmt.Errorf("cannot settle escrow in status %s", o.escrowStatus),
		)
	}
	o.escrowStatus = settled
	return nil
}

// Submit moves a draft order to payment.
func (o *Order) Submit(now time.Time) error {
	return o.setStatus(o.status.Submit, now)
}

// ConfirmPayment marks the order as paid.
func (o *Order) ConfirmPayment(now time.Time) error {
	return o.setStatus(o.status.ConfirmPayment, now)
}

// Advance moves fulfilment one step forward:
//   - a paid order starts and its first stage begins
//   - otherwise the running stage completes and the next pending stage begins
//   - completing the last stage completes the order
//
// Completing the order stamps updatedAt, which is where the pickup window starts.
func (o *Order) Advance(now time.Time) error {
	switch o.status {
	case Paid:
		if err := o.setStatus(o.status.Start, now); err != nil {
			return err
		}
		return o.stages[0].start()
	case InProgress:
		current := o.CurrentStage()
		if current == nil {
			return ErrNoActiveStage
		}
		if err := current.complete(); err != nil {
			return err
		}
		o.updatedAt = now
		if next := o.nextPendingStage(); next != nil {
			return next.start()
		}
		return o.setStatus(o.status.Complete, now)
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to advance", o.status),
		)
	}
}

// Cancel aborts an order before completion. Open stages are canceled too.
func (o *Order) Cancel(reason string, now time.Time) error {
	if err := o.setStatus(o.status.Cancel, now); err != nil {
		return err
	}
	for _, s := range o.stages {
		s.cancel()
	}
	o.annotate(reason)
	return nil
}

// Expire closes a completed order whose pickup window elapsed.
func (o *Order) Expire(note string, now time.Time) error {
	if err := o.setStatus(o.status.Expire, now); err != nil {
		return err
	}
	o.annotate(note)
	return nil
}

// SinceLastUpdate is the time elapsed since the last lifecycle change.
func (o *Order) SinceLastUpdate(now time.Time) time.Duration {
	return now.Sub(o.updatedAt)
}

func (o *Order) setStatus(transition func() (Status, error), now time.Time) error {
	next, err := transition()
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) nextPendingStage() *Stage {
	for _, s := range o.stages {
		if s.Status() == StagePending {
			return s
		}
	}
	return nil
}

func (o *Order) annotate(note string) {
	if note == "" {
		return
	}
	if o.notes == "" {
		o.notes = note
		return
	}
	o.notes = o.notes + "\n" + note
}

// validateStagePlan checks the stage invariants for a new order.
func validateStagePlan(orderType Type, stages []StageSpec) error {
	if len(stages) == 0 {
		return errs.NewValueIsRequiredError("stages")
	}

	dropoffs := 0
	for i, s := range stages {
		if s.SequenceNo != i+1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"sequence_no",
				fmt.Errorf("stage %d has sequence %d, want %d", i, s.SequenceNo, i+1),
			)
		}
		if s.Type == StageDropoff {
			dropoffs++
		}
	}

	want := 1
	if orderType.IsOnsite() {
		want = 0
	}
	if dropoffs != want {
		return errs.NewValueIsInvalidErrorWithCause(
			"stages",
			fmt.Errorf("%s order has %d dropoff stages, want %d", orderType, dropoffs, want),
		)
	}

	return nil
}

package order

import (
	"errors"
	"strings"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"
	"errand/internal/pkg/guard"
)

var ErrHeaderIsNotConstructed = errors.New("Header must be created via NewHeader constructor")

// Header is the validated header of an order request: everything the customer
// supplies except the line items.
type Header struct { //nolint:recvcheck //using for validation
	orderType Type
	status    Status
	totals    Totals
	currency  string
	pickup    *kernel.Location
	dropoff   kernel.Location
	notes     string

	guard guard.ConstructorGuard
}

// NewHeader validates the order header. Types with an acquisition step
// (PURCHASE_DELIVER, CHAIN) require a pickup point; for the others it is optional.
func NewHeader(
	orderType Type,
	status Status,
	totals Totals,
	currency string,
	pickup *kernel.Location,
	dropoff kernel.Location,
	notes string,
) (Header, error) {
	var pickupErr error
	switch {
	case pickup != nil:
		pickupErr = pickup.Validate()
	case orderType.RequiresAcquisition():
		pickupErr = errs.NewValueIsRequiredError("pickup")
	}

	// the total and currency must form valid Money even when the total is zero
	_, moneyErr := kernel.NewMoney(totals.Total(), currency)

	if err := errors.Join(
		orderType.Validate(),
		status.ValidateInitial(),
		moneyErr,
		pickupErr,
		dropoff.Validate(),
	); err != nil {
		return Header{}, err
	}

	return Header{
		orderType: orderType,
		status:    status,
		totals:    totals,
		currency:  currency,
		pickup:    pickup,
		dropoff:   dropoff,
		notes:     strings.TrimSpace(notes),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (h Header) Validate() error {
	return h.guard.Validate(ErrHeaderIsNotConstructed)
}

func (h Header) Type() Type               { return h.orderType }
func (h Header) Status() Status           { return h.status }
func (h Header) Totals() Totals           { return h.totals }
func (h Header) Currency() string         { return h.currency }
func (h Header) Pickup() *kernel.Location { return h.pickup }
func (h Header) Dropoff() kernel.Location { return h.dropoff }
func (h Header) Notes() string            { return h.notes }

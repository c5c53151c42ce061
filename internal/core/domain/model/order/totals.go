package order

import (
	"errors"

	"errand/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Totals is the amount breakdown quoted to the customer. Total is the amount that is
// held in escrow; a zero Total means no quote exists yet.
type Totals struct {
	subtotal    decimal.Decimal
	deliveryFee decimal.Decimal
	serviceFee  decimal.Decimal
	total       decimal.Decimal
}

// NewTotals validates every component with kernel.ValidateAmount.
func NewTotals(subtotal, deliveryFee, serviceFee, total decimal.Decimal) (Totals, error) {
	if err := errors.Join(
		kernel.ValidateAmount("subtotal", subtotal),
		kernel.ValidateAmount("delivery_fee", deliveryFee),
		kernel.ValidateAmount("service_fee", serviceFee),
		kernel.ValidateAmount("total", total),
	); err != nil {
		return Totals{}, err
	}

	return Totals{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		serviceFee:  serviceFee,
		total:       total,
	}, nil
}

func (t Totals) Subtotal() decimal.Decimal    { return t.subtotal }
func (t Totals) DeliveryFee() decimal.Decimal { return t.deliveryFee }
func (t Totals) ServiceFee() decimal.Decimal  { return t.serviceFee }
func (t Totals) Total() decimal.Decimal       { return t.total }

// HasTotal reports whether a positive total was quoted.
func (t Totals) HasTotal() bool {
	return t.total.IsPositive()
}

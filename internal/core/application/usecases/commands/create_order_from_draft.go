package commands

import (
	"errors"
	"fmt"

	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/pkg/errs"
)

// NewCreateOrderCommandFromDraft validates raw draft contents and builds the
// creation command. An empty status means the order goes straight to payment.
func NewCreateOrderCommandFromDraft(customerID kernel.UUID, contents draft.Contents) (CreateOrderCommand, error) {
	header, err := headerFromDraft(contents)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	items := make([]order.ItemSpec, 0, len(contents.Items))
	for i, it := range contents.Items {
		spec, specErr := order.NewItemSpec(it.CatalogRef, it.Description, it.Quantity, it.Price)
		if specErr != nil {
			return CreateOrderCommand{}, fmt.Errorf("item %d: %w", i, specErr)
		}
		items = append(items, spec)
	}

	return NewCreateOrderCommand(customerID, header, items)
}

func headerFromDraft(c draft.Contents) (order.Header, error) {
	orderType, typeErr := order.ParseType(c.OrderType)

	status := order.PaymentPending
	var statusErr error
	if c.Status != "" {
		status, statusErr = order.ParseStatus(c.Status)
	}

	totals, totalsErr := order.NewTotals(c.Totals.Subtotal, c.Totals.DeliveryFee, c.Totals.ServiceFee, c.Totals.Total)

	var pickup *kernel.Location
	var pickupErr error
	if c.Pickup != nil {
		loc, err := kernel.NewLocation(c.Pickup.Lat, c.Pickup.Lng, c.Pickup.Address)
		pickup, pickupErr = &loc, err
	}

	var dropoff kernel.Location
	var dropoffErr error
	if c.Dropoff == nil {
		dropoffErr = errs.NewValueIsRequiredError("dropoff")
	} else {
		dropoff, dropoffErr = kernel.NewLocation(c.Dropoff.Lat, c.Dropoff.Lng, c.Dropoff.Address)
	}

	if err := errors.Join(typeErr, statusErr, totalsErr, pickupErr, dropoffErr); err != nil {
		return order.Header{}, err
	}

	return order.NewHeader(orderType, status, totals, kernel.NormalizeCurrency(c.Currency), pickup, dropoff, c.Notes)
}

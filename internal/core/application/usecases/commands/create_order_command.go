package commands

import (
	"errors"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/pkg/errs"
	"errand/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place an errand order.
// It carries the validated order header and at least one line item.
//
// Example:
//
//	header, _ := order.NewHeader(order.PurchaseDeliver, order.Paid, totals, "SAR", &pickup, dropoff, "")
//	item, _ := order.NewItemSpec("", "2 liters of milk", 1, decimal.NewFromInt(8))
//	cmd, err := NewCreateOrderCommand(customerID, header, []order.ItemSpec{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	header     order.Header
	items      []order.ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the customer, the header and the item list.
// Nothing is written when it fails.
func NewCreateOrderCommand(customerID kernel.UUID, header order.Header, items []order.ItemSpec) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setHeader(header),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) Header() order.Header    { return c.header }

// Items returns a copy of the line items.
func (c CreateOrderCommand) Items() []order.ItemSpec {
	return append([]order.ItemSpec(nil), c.items...)
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setHeader(header order.Header) error {
	if err := header.Validate(); err != nil {
		return err
	}

	c.header = header
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.ItemSpec) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]order.ItemSpec(nil), items...)
	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"
	"errand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrItemSpecIsNotConstructed = errors.New("ItemSpec must be created via NewItemSpec constructor")
	ErrItemIsNotConstructed     = errors.New("Item must be created via NewItem constructor")
)

// ItemSpec describes a line item as requested by the customer: either a catalog
// reference or a free-text description of what to buy or carry.
type ItemSpec struct { //nolint:recvcheck //using for validation
	catalogRef  string
	description string
	quantity    int
	unitPrice   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItemSpec requires a catalog reference or a description, a positive quantity
// and a price accepted by kernel.ValidateAmount.
func NewItemSpec(catalogRef, description string, quantity int, unitPrice decimal.Decimal) (ItemSpec, error) {
	spec := ItemSpec{
		catalogRef:  strings.TrimSpace(catalogRef),
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	var refErr error
	if spec.catalogRef == "" && spec.description == "" {
		refErr = errs.NewValueIsRequiredError("catalog_ref or description")
	}

	if err := errors.Join(refErr, spec.setQuantity(quantity), spec.setUnitPrice(unitPrice)); err != nil {
		return ItemSpec{}, err
	}

	return spec, nil
}

func (s ItemSpec) Validate() error {
	return s.guard.Validate(ErrItemSpecIsNotConstructed)
}

func (s ItemSpec) CatalogRef() string         { return s.catalogRef }
func (s ItemSpec) Description() string        { return s.description }
func (s ItemSpec) Quantity() int              { return s.quantity }
func (s ItemSpec) UnitPrice() decimal.Decimal { return s.unitPrice }

// LineTotal is quantity times unit price.
func (s ItemSpec) LineTotal() decimal.Decimal {
	return s.unitPrice.Mul(decimal.NewFromInt(int64(s.quantity)))
}

func (s *ItemSpec) setQuantity(q int) error {
	if q <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", q))
	}
	s.quantity = q
	return nil
}

func (s *ItemSpec) setUnitPrice(p decimal.Decimal) error {
	if err := kernel.ValidateAmount("price", p); err != nil {
		return err
	}
	s.unitPrice = p
	return nil
}

// Item is a persisted line item. Items are created together with their order and
// are never modified afterwards.
type Item struct {
	id      kernel.UUID
	orderID kernel.UUID
	spec    ItemSpec
}

// NewItem binds a spec to an order.
func NewItem(id, orderID kernel.UUID, spec ItemSpec) (*Item, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), spec.Validate()); err != nil {
		return nil, err
	}
	return &Item{id: id, orderID: orderID, spec: spec}, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	if err := i.spec.Validate(); err != nil {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID      { return i.id }
func (i *Item) OrderID() kernel.UUID { return i.orderID }
func (i *Item) Spec() ItemSpec       { return i.spec }

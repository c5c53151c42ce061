package order

import (
	"errors"
	"fmt"
)

// ErrInvalidOrderType is returned for order types outside the known vocabulary.
var ErrInvalidOrderType = errors.New("invalid order type")

// Type declares what kind of errand the customer asked for. It drives the stage list.
type Type string

const (
	// DirectDropoff carries an item the customer already has to the dropoff point.
	DirectDropoff Type = "DIRECT_DROPOFF"
	// PurchaseDeliver buys the items at the pickup point and delivers them.
	PurchaseDeliver Type = "PURCHASE_DELIVER"
	// Chain buys at the pickup point on behalf of a chain store and delivers.
	Chain Type = "CHAIN"
	// OnsiteService is work performed at the customer's location; nothing is dropped off.
	OnsiteService Type = "ONSITE_SERVICE"
)

// ParseType validates a wire value.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case DirectDropoff, PurchaseDeliver, Chain, OnsiteService:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrderType, string(t))
	}
}

// RequiresAcquisition reports whether the items must be bought before delivery.
func (t Type) RequiresAcquisition() bool {
	return t == PurchaseDeliver || t == Chain
}

// IsOnsite reports whether the order is fulfilled entirely at one location.
func (t Type) IsOnsite() bool {
	return t == OnsiteService
}

func (t Type) String() string {
	return string(t)
}

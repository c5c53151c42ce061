// Package queries contains read operations. Order queries read the tables directly
// and return flat read models instead of aggregates.
package queries

import (
	"errors"
	"time"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery reads one order with its items, stages and escrow ledger.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// OrderView is the read model of an order.
type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Type         string
	Status       string
	EscrowStatus string
	Subtotal     decimal.Decimal
	DeliveryFee  decimal.Decimal
	ServiceFee   decimal.Decimal
	Total        decimal.Decimal
	Currency     string
	Pickup       *PointView
	Dropoff      PointView
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []ItemView
	Stages       []StageView
	Escrow       []EscrowEntryView
}

type PointView struct {
	Lat     float64
	Lng     float64
	Address string
}

type ItemView struct {
	ID          kernel.UUID
	CatalogRef  string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

type StageView struct {
	ID         kernel.UUID
	Type       string
	SequenceNo int
	Status     string
	Location   *PointView
}

type EscrowEntryView struct {
	ID          kernel.UUID
	Type        string
	Amount      decimal.Decimal
	Currency    string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

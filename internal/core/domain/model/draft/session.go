// Package draft keeps a customer's in-progress order request between steps of the
// ordering flow. A Session is created when the flow starts, replaced as the customer
// edits it, and cleared when it is submitted or abandoned.
package draft

import (
	"errors"
	"time"

	"errand/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Point is an unvalidated location as typed by the customer.
type Point struct {
	Lat     float64
	Lng     float64
	Address string
}

// Item is an unvalidated line item.
type Item struct {
	CatalogRef  string
	Description string
	Quantity    int
	Price       decimal.Decimal
}

// Totals is the unvalidated amount breakdown.
type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	ServiceFee  decimal.Decimal
	Total       decimal.Decimal
}

// Contents is everything entered so far. Fields may be empty; validation happens
// when the session is submitted as an order.
type Contents struct {
	OrderType string
	Status    string
	Currency  string
	Totals    Totals
	Pickup    *Point
	Dropoff   *Point
	Notes     string
	Items     []Item
}

// Session is the explicit draft state of one customer's ordering flow.
type Session struct {
	id         kernel.UUID
	customerID kernel.UUID
	contents   Contents
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewSession opens an empty draft for a customer.
func NewSession(id, customerID kernel.UUID, now time.Time) (*Session, error) {
	return RestoreSession(id, customerID, Contents{}, now, now)
}

// RestoreSession rebuilds a session from storage.
func RestoreSession(id, customerID kernel.UUID, contents Contents, createdAt, updatedAt time.Time) (*Session, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	return &Session{
		id:            id,
		customerID:    customerID,
		contents:      contents,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s *Session) ID() kernel.UUID         { return s.id }
func (s *Session) CustomerID() kernel.UUID { return s.customerID }
func (s *Session) CreatedAt() time.Time    { return s.createdAt }
func (s *Session) UpdatedAt() time.Time    { return s.updatedAt }

// Contents returns a copy of the draft contents.
func (s *Session) Contents() Contents {
	c := s.contents
	c.Items = append([]Item(nil), s.contents.Items...)
	return c
}

// Replace overwrites the draft contents.
func (s *Session) Replace(contents Contents, now time.Time) {
	contents.Items = append([]Item(nil), contents.Items...)
	s.contents = contents
	s.updatedAt = now
}

// BelongsTo reports whether the session was opened by the customer.
func (s *Session) BelongsTo(customerID kernel.UUID) bool {
	return s.customerID.IsEqual(customerID)
}

package queries

import (
	"errors"
	"time"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery lists a customer's orders, newest activity first,
// optionally narrowed to one status.
type ListCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	status     order.Status

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery accepts an empty status for "any status".
func NewListCustomerOrdersQuery(customerID kernel.UUID, status string) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}

	q := ListCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return ListCustomerOrdersQuery{}, err
		}
		q.status = parsed
	}

	return q, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }

// Status is order.Unknown when the query is not filtered.
func (q ListCustomerOrdersQuery) Status() order.Status { return q.status }

// OrderSummary is one row of a customer's order list.
type OrderSummary struct {
	ID           kernel.UUID
	Type         string
	Status       string
	EscrowStatus string
	Total        decimal.Decimal
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

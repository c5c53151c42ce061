package order

import (
	"fmt"

	"errand/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Draft ──> PaymentPending ──> Paid ──> InProgress ──> Completed
//	  │             │             │           │              │
//	  └─────────────┴─────────────┴───────────┴──> Canceled <┘ (expiry only)
//
// Completed means the fulfilment work is done and the order is waiting for the
// customer to pick it up. A completed order is only canceled by the expiry sweep.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Draft
	PaymentPending
	Paid
	InProgress
	Completed
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Draft:          "draft",
		PaymentPending: "payment_pending",
		Paid:           "paid",
		InProgress:     "in_progress",
		Completed:      "completed",
		Canceled:       "canceled",
	}
}

// ParseStatus converts the wire name ("payment_pending", ...) into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. ones read from storage.
func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateInitial checks that an order may be created in this status.
// Orders are created before fulfilment starts, so only Draft, PaymentPending
// and Paid are accepted.
func (s Status) ValidateInitial() error {
	if s != Draft && s != PaymentPending && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for a new order", s),
		)
	}
	return nil
}

// Submit moves a draft to PaymentPending.
func (s Status) Submit() (Status, error) {
	return s.transition(PaymentPending, Draft)
}

// ConfirmPayment moves PaymentPending to Paid.
func (s Status) ConfirmPayment() (Status, error) {
	return s.transition(Paid, PaymentPending)
}

// Start moves a paid order into fulfilment.
func (s Status) Start() (Status, error) {
	return s.transition(InProgress, Paid)
}

// Complete marks the fulfilment work as done.
func (s Status) Complete() (Status, error) {
	return s.transition(Completed, InProgress)
}

// Cancel is allowed from every status that precedes Completed.
func (s Status) Cancel() (Status, error) {
	return s.transition(Canceled, Draft, PaymentPending, Paid, InProgress)
}

// Expire closes a completed order that was never picked up.
func (s Status) Expire() (Status, error) {
	return s.transition(Canceled, Completed)
}

func (s Status) transition(to Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("cannot move from %s to %s", s, to),
	)
}

// Package notification defines the write-once messages handed to the push service.
package notification

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Type is the closed vocabulary of notification kinds.
type Type string

const (
	PickupReminder Type = "pickup_reminder"
	OrderExpired   Type = "order_expired"
)

func (t Type) Validate() error {
	switch t {
	case PickupReminder, OrderExpired:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid notification type", string(t)))
	}
}

// Data is the structured payload delivered alongside the message.
type Data struct {
	OrderID  string `json:"order_id"`
	DaysLeft *int   `json:"days_left,omitempty"`
}

// Notification is addressed to a user; it is not necessarily bound to an order.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	title     string
	body      string
	nType     Type
	data      Data
	createdAt time.Time

	isConstructed bool
}

// NewNotification validates recipient, type and the non-empty title and body.
func NewNotification(
	id, userID kernel.UUID,
	nType Type,
	title, body string,
	data Data,
	now time.Time,
) (*Notification, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	var titleErr, bodyErr error
	if title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if body == "" {
		bodyErr = errs.NewValueIsRequiredError("body")
	}

	if err := errors.Join(id.Validate(), userID.Validate(), nType.Validate(), titleErr, bodyErr); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		userID:        userID,
		title:         title,
		body:          body,
		nType:         nType,
		data:          data,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// NewPickupReminder tells the customer how many days remain to collect the order.
func NewPickupReminder(userID, orderID kernel.UUID, daysLeft int, now time.Time) (*Notification, error) {
	if daysLeft < 1 {
		return nil, errs.NewValueIsOutOfRangeError("days_left", daysLeft, 1, "∞")
	}

	body := fmt.Sprintf("Your order is ready. You have %d days left to pick it up.", daysLeft)
	if daysLeft == 1 {
		body = "Your order is ready. Today is the final day to pick it up before it is closed."
	}

	return NewNotification(
		kernel.NewUUID(),
		userID,
		PickupReminder,
		"Your order is waiting for pickup",
		body,
		Data{OrderID: orderID.String(), DaysLeft: &daysLeft},
		now,
	)
}

// NewOrderExpired tells the customer the order was closed automatically.
func NewOrderExpired(userID, orderID kernel.UUID, now time.Time) (*Notification, error) {
	return NewNotification(
		kernel.NewUUID(),
		userID,
		OrderExpired,
		"Your order was closed",
		"Your order was not picked up in time and has been closed automatically.",
		Data{OrderID: orderID.String()},
		now,
	)
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID      { return n.id }
func (n *Notification) UserID() kernel.UUID  { return n.userID }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Body() string         { return n.body }
func (n *Notification) Type() Type           { return n.nType }
func (n *Notification) Data() Data           { return n.data }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// Key identifies the message for deduplication as type:user:order[:days_left]. The
// same reminder to the same user for the same order and number of remaining days has
// the same key; messages without an order are still kept apart per user.
func (n *Notification) Key() string {
	key := string(n.nType) + ":" + n.userID.String() + ":" + n.data.OrderID
	if n.data.DaysLeft != nil {
		key += ":" + strconv.Itoa(*n.data.DaysLeft)
	}
	return key
}

package services

import (
	"fmt"
	"time"

	"errand/internal/pkg/errs"
)

const (
	DefaultRemindAfter = 24 * time.Hour
	DefaultExpireAfter = 7 * 24 * time.Hour
)

// PickupAction is what the sweep does with a completed order.
type PickupAction int

const (
	PickupWait PickupAction = iota
	PickupRemind
	PickupExpire
)

// PickupPolicy holds the time windows applied to completed orders awaiting pickup:
// reminders start RemindAfter the completion and the order is closed ExpireAfter it.
type PickupPolicy struct {
	remindAfter time.Duration
	expireAfter time.Duration
}

// NewPickupPolicy requires 0 < remindAfter < expireAfter.
func NewPickupPolicy(remindAfter, expireAfter time.Duration) (PickupPolicy, error) {
	if remindAfter <= 0 {
		return PickupPolicy{}, errs.NewValueIsInvalidErrorWithCause("remind_after", fmt.Errorf("%s is not positive", remindAfter))
	}
	if expireAfter <= remindAfter {
		return PickupPolicy{}, errs.NewValueIsInvalidErrorWithCause(
			"expire_after",
			fmt.Errorf("%s must be greater than remind_after %s", expireAfter, remindAfter),
		)
	}
	return PickupPolicy{remindAfter: remindAfter, expireAfter: expireAfter}, nil
}

// DefaultPickupPolicy reminds after one day and closes after seven.
func DefaultPickupPolicy() PickupPolicy {
	return PickupPolicy{remindAfter: DefaultRemindAfter, expireAfter: DefaultExpireAfter}
}

func (p PickupPolicy) RemindAfter() time.Duration { return p.remindAfter }
func (p PickupPolicy) ExpireAfter() time.Duration { return p.expireAfter }

// ExpiryThreshold: orders updated at or before it are closed.
func (p PickupPolicy) ExpiryThreshold(now time.Time) time.Time {
	return now.Add(-p.expireAfter)
}

// ReminderThreshold: orders updated at or before it (and after ExpiryThreshold) are reminded.
func (p PickupPolicy) ReminderThreshold(now time.Time) time.Time {
	return now.Add(-p.remindAfter)
}

// Classify places an order completed at updatedAt into exactly one window.
func (p PickupPolicy) Classify(updatedAt, now time.Time) PickupAction {
	switch {
	case !updatedAt.After(p.ExpiryThreshold(now)):
		return PickupExpire
	case !updatedAt.After(p.ReminderThreshold(now)):
		return PickupRemind
	default:
		return PickupWait
	}
}

// DaysLeft is max(1, expiry days − whole days elapsed). An order six days and 23
// hours old under the default policy has one day left.
func (p PickupPolicy) DaysLeft(updatedAt, now time.Time) int {
	const day = 24 * time.Hour
	left := int(p.expireAfter/day) - int(now.Sub(updatedAt)/day)
	return max(1, left)
}

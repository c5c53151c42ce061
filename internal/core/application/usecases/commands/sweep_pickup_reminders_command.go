package commands

import (
	"errors"
	"time"

	"errand/internal/pkg/errs"
	"errand/internal/pkg/guard"
)

var ErrSweepPickupRemindersCommandIsNotConstructed = errors.New(
	"SweepPickupRemindersCommand must be created via NewSweepPickupRemindersCommand constructor",
)

// SweepPickupRemindersCommand runs one sweep over completed orders as of now.
// Both time windows are computed from this single instant.
type SweepPickupRemindersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewSweepPickupRemindersCommand(now time.Time) (SweepPickupRemindersCommand, error) {
	if now.IsZero() {
		return SweepPickupRemindersCommand{}, errs.NewValueIsRequiredError("now")
	}

	return SweepPickupRemindersCommand{
		now:   now.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SweepPickupRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSweepPickupRemindersCommandIsNotConstructed)
}

func (c SweepPickupRemindersCommand) Now() time.Time {
	return c.now
}

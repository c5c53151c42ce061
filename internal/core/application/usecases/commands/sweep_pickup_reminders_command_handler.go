package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/notification"
	"errand/internal/core/domain/model/order"
	"errand/internal/core/domain/services"
	"errand/internal/core/ports"
)

// PickupSweepName identifies the pickup sweep in the sweep lock.
const PickupSweepName = "pickup_reminders"

const expiredNote = "closed automatically: not picked up in time"

// ErrSweepFailed is returned when the sweep had candidates and every one of them failed.
var ErrSweepFailed = errors.New("pickup sweep failed")

// SweepResult reports what one sweep did.
//   - Closed: orders moved from completed to canceled
//   - Reminded: pickup reminders handed to the dispatcher
//   - Skipped: the sweep did not run because another one holds the lock or ran too recently
type SweepResult struct {
	Closed   int  `json:"closed"`
	Reminded int  `json:"reminded"`
	Skipped  bool `json:"skipped"`
}

// SweepPickupRemindersCommandHandler closes completed orders whose pickup window
// elapsed and reminds customers whose window is still open.
//
// Orders are partitioned with two queries against the same instant: the closing
// window (updated_at <= now-expire) is handled first, then the reminder window
// (now-expire < updated_at <= now-remind). Every order is handled on its own; a
// failure is logged and the sweep moves on. A closed order is committed before its
// notification is attempted, so a notification failure never reopens it.
//
// The sweep is single-flight through ports.SweepLocker.
type SweepPickupRemindersCommandHandler struct {
	uowFactory  OrderUoWFactory
	locker      ports.SweepLocker
	dispatcher  ports.NotificationDispatcher
	policy      services.PickupPolicy
	minInterval time.Duration
	logger      *slog.Logger
}

func NewSweepPickupRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.SweepLocker,
	dispatcher ports.NotificationDispatcher,
	policy services.PickupPolicy,
	minInterval time.Duration,
	logger *slog.Logger,
) SweepPickupRemindersCommandHandler {
	return SweepPickupRemindersCommandHandler{
		uowFactory:  uowFactory,
		locker:      locker,
		dispatcher:  dispatcher,
		policy:      policy,
		minInterval: minInterval,
		logger:      logger.With("component", "pickup_sweep"),
	}
}

// outcome counts per-order results of one window.
type outcome struct {
	candidates int
	failed     int
	done       int
	lastErr    error
}

func (o *outcome) fail(err error) {
	o.failed++
	o.lastErr = err
}

func (h *SweepPickupRemindersCommandHandler) Handle(ctx context.Context, cmd SweepPickupRemindersCommand) (SweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepResult{}, err
	}

	now := cmd.Now()

	lease, ok, err := h.locker.Acquire(ctx, PickupSweepName, now, h.minInterval)
	if err != nil {
		return SweepResult{}, fmt.Errorf("acquire sweep lock: %w", err)
	}
	if !ok {
		h.logger.InfoContext(ctx, "Pickup sweep skipped", "now", now)
		return SweepResult{Skipped: true}, nil
	}

	closing, err := h.closeExpired(ctx, now)
	if err != nil {
		h.release(ctx, lease)
		return SweepResult{}, err
	}

	reminding, err := h.remind(ctx, now)
	if err != nil {
		h.release(ctx, lease)
		return SweepResult{Closed: closing.done}, err
	}

	result := SweepResult{Closed: closing.done, Reminded: reminding.done}

	candidates := closing.candidates + reminding.candidates
	failed := closing.failed + reminding.failed
	if candidates > 0 && failed == candidates {
		h.release(ctx, lease)
		return result, fmt.Errorf("%w: %d of %d orders: %w", ErrSweepFailed, failed, candidates, errors.Join(closing.lastErr, reminding.lastErr))
	}

	if err = lease.Complete(ctx, now); err != nil {
		h.logger.ErrorContext(ctx, "Failed to record pickup sweep watermark", "error", err)
	}

	h.logger.InfoContext(ctx, "Pickup sweep finished",
		"closed", result.Closed,
		"reminded", result.Reminded,
		"failed", failed,
	)

	return result, nil
}

func (h *SweepPickupRemindersCommandHandler) closeExpired(ctx context.Context, now time.Time) (outcome, error) {
	orders, err := h.uowFactory.Create().OrderRepository().GetAllCompletedUpdatedBefore(ctx, h.policy.ExpiryThreshold(now))
	if err != nil {
		return outcome{}, fmt.Errorf("find expired orders: %w", err)
	}

	res := outcome{candidates: len(orders)}
	for _, o := range orders {
		closed, expireErr := h.expire(ctx, o.ID(), now)
		if expireErr != nil {
			h.logger.ErrorContext(ctx, "Failed to close expired order", "order_id", o.ID(), "error", expireErr)
			res.fail(expireErr)
			continue
		}
		if !closed {
			h.logger.DebugContext(ctx, "Order changed since the sweep read it, not closing", "order_id", o.ID())
			continue
		}
		res.done++

		n, nErr := notification.NewOrderExpired(o.CustomerID(), o.ID(), now)
		if nErr == nil {
			nErr = h.dispatcher.Dispatch(ctx, n)
		}
		if nErr != nil && !errors.Is(nErr, ports.ErrNotificationAlreadyDispatched) {
			h.logger.WarnContext(ctx, "Order closed but expiry notification failed", "order_id", o.ID(), "error", nErr)
		}
	}

	return res, nil
}

// expire re-reads the order under a row lock and closes it if it is still completed
// and still past the expiry threshold. It reports false when the order no longer qualifies.
func (h *SweepPickupRemindersCommandHandler) expire(ctx context.Context, orderID kernel.UUID, now time.Time) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	if err != nil {
		return false, err
	}

	if o.Status() != order.Completed || o.UpdatedAt().After(h.policy.ExpiryThreshold(now)) {
		return false, nil
	}

	if err = o.Expire(expiredNote, now); err != nil {
		return false, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (h *SweepPickupRemindersCommandHandler) remind(ctx context.Context, now time.Time) (outcome, error) {
	orders, err := h.uowFactory.Create().OrderRepository().GetAllCompletedUpdatedBetween(
		ctx,
		h.policy.ExpiryThreshold(now),
		h.policy.ReminderThreshold(now),
	)
	if err != nil {
		return outcome{}, fmt.Errorf("find orders awaiting pickup: %w", err)
	}

	res := outcome{candidates: len(orders)}
	for _, o := range orders {
		daysLeft := h.policy.DaysLeft(o.UpdatedAt(), now)

		n, nErr := notification.NewPickupReminder(o.CustomerID(), o.ID(), daysLeft, now)
		if nErr == nil {
			nErr = h.dispatcher.Dispatch(ctx, n)
		}

		switch {
		case errors.Is(nErr, ports.ErrNotificationAlreadyDispatched):
			h.logger.DebugContext(ctx, "Pickup reminder already sent", "order_id", o.ID(), "days_left", daysLeft)
		case nErr != nil:
			h.logger.ErrorContext(ctx, "Failed to send pickup reminder", "order_id", o.ID(), "error", nErr)
			res.fail(nErr)
		default:
			res.done++
		}
	}

	return res, nil
}

func (h *SweepPickupRemindersCommandHandler) release(ctx context.Context, lease ports.SweepLease) {
	if err := lease.Release(ctx); err != nil {
		h.logger.ErrorContext(ctx, "Failed to release pickup sweep lock", "error", err)
	}
}

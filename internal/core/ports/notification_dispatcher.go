package ports

import (
	"context"
	"errors"

	"errand/internal/core/domain/model/notification"
)

// ErrNotificationAlreadyDispatched is returned when a notification with the same
// key was handed over before. Callers treat it as delivered, not as a failure.
var ErrNotificationAlreadyDispatched = errors.New("notification already dispatched")

// NotificationDispatcher hands a notification to the delivery channel. Any other
// returned error means the notification was not accepted.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n *notification.Notification) error
}

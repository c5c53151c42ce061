package ports

import (
	"context"
	"time"
)

// SweepLocker makes a periodic sweep single-flight across processes.
//
// Acquire returns ok=false (and no error) when the sweep must be skipped:
//   - another process currently holds the lease for name
//   - now is not after the time the last completed sweep ran for
//   - less than minInterval passed since the last completed sweep
//
// A granted lease must be released; Complete records now as the new watermark
// and releases the lease in one step.
type SweepLocker interface {
	Acquire(ctx context.Context, name string, now time.Time, minInterval time.Duration) (lease SweepLease, ok bool, err error)
}

// SweepLease is held for the duration of one sweep.
type SweepLease interface {
	Complete(ctx context.Context, sweptAt time.Time) error
	Release(ctx context.Context) error
}

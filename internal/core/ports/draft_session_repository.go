package ports

import (
	"context"

	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/kernel"
)

// DraftSessionRepository stores in-progress order requests.
type DraftSessionRepository interface {
	Add(ctx context.Context, session *draft.Session) error
	Update(ctx context.Context, session *draft.Session) error

	// Get returns errs.ObjectNotFoundError when the session does not exist.
	Get(ctx context.Context, id kernel.UUID) (*draft.Session, error)

	// Delete clears a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}

package queries

import (
	"context"
	"errors"

	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"
	"errand/internal/pkg/guard"
)

var ErrGetDraftSessionQueryIsNotConstructed = errors.New(
	"GetDraftSessionQuery must be created via NewGetDraftSessionQuery constructor",
)

// GetDraftSessionQuery reads a customer's own draft session.
type GetDraftSessionQuery struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDraftSessionQuery(sessionID, customerID kernel.UUID) (GetDraftSessionQuery, error) {
	if err := errors.Join(sessionID.Validate(), customerID.Validate()); err != nil {
		return GetDraftSessionQuery{}, err
	}

	return GetDraftSessionQuery{
		sessionID:  sessionID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetDraftSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftSessionQueryIsNotConstructed)
}

func (q GetDraftSessionQuery) SessionID() kernel.UUID  { return q.sessionID }
func (q GetDraftSessionQuery) CustomerID() kernel.UUID { return q.customerID }

// DraftSessionReader loads sessions by id.
type DraftSessionReader interface {
	Get(ctx context.Context, id kernel.UUID) (*draft.Session, error)
}

// GetDraftSessionQueryHandler reads sessions through the draft session store. The
// payload is a JSON document owned by that store, so there is no SQL read model.
type GetDraftSessionQueryHandler struct {
	reader DraftSessionReader
}

func NewGetDraftSessionQueryHandler(reader DraftSessionReader) GetDraftSessionQueryHandler {
	return GetDraftSessionQueryHandler{reader: reader}
}

// Handle reports sessions of other customers as not found.
func (h GetDraftSessionQueryHandler) Handle(ctx context.Context, query GetDraftSessionQuery) (*draft.Session, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	session, err := h.reader.Get(ctx, query.SessionID())
	if err != nil {
		return nil, err
	}

	if !session.BelongsTo(query.CustomerID()) {
		return nil, errs.NewObjectNotFoundError("draft session", query.SessionID().String())
	}

	return session, nil
}

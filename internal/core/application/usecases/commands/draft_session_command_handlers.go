package commands

import (
	"context"
	"time"

	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/core/domain/services"
	"errand/internal/core/ports"
	"errand/internal/pkg/errs"
)

// OpenDraftSessionCommandHandler creates an empty session.
type OpenDraftSessionCommandHandler struct {
	uowFactory DraftUoWFactory
}

func NewOpenDraftSessionCommandHandler(uowFactory DraftUoWFactory) OpenDraftSessionCommandHandler {
	return OpenDraftSessionCommandHandler{uowFactory: uowFactory}
}

func (h *OpenDraftSessionCommandHandler) Handle(ctx context.Context, cmd OpenDraftSessionCommand) (*draft.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session, err := draft.NewSession(kernel.NewUUID(), cmd.CustomerID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DraftSessionRepository().Add(ctx, session); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return session, nil
}

// SaveDraftSessionCommandHandler replaces the contents of a session.
type SaveDraftSessionCommandHandler struct {
	uowFactory DraftUoWFactory
}

func NewSaveDraftSessionCommandHandler(uowFactory DraftUoWFactory) SaveDraftSessionCommandHandler {
	return SaveDraftSessionCommandHandler{uowFactory: uowFactory}
}

func (h *SaveDraftSessionCommandHandler) Handle(ctx context.Context, cmd SaveDraftSessionCommand) (*draft.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DraftSessionRepository()

	session, err := getOwnedSession(ctx, repo, cmd.SessionID(), cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	session.Replace(cmd.Contents(), time.Now().UTC())

	if err = repo.Update(ctx, session); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return session, nil
}

// DiscardDraftSessionCommandHandler clears an abandoned session.
type DiscardDraftSessionCommandHandler struct {
	uowFactory DraftUoWFactory
}

func NewDiscardDraftSessionCommandHandler(uowFactory DraftUoWFactory) DiscardDraftSessionCommandHandler {
	return DiscardDraftSessionCommandHandler{uowFactory: uowFactory}
}

func (h *DiscardDraftSessionCommandHandler) Handle(ctx context.Context, cmd DraftSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DraftSessionRepository()

	if _, err := getOwnedSession(ctx, repo, cmd.SessionID(), cmd.CustomerID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.SessionID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// SubmitDraftSessionCommandHandler validates a session, creates the order it
// describes and clears the session, all in one transaction. Validation failures
// leave the session untouched so the customer can fix it.
type SubmitDraftSessionCommandHandler struct {
	uowFactory UoWFactory
	sequencer  services.StageSequencer
	ledger     services.EscrowLedger
}

func NewSubmitDraftSessionCommandHandler(uowFactory UoWFactory) SubmitDraftSessionCommandHandler {
	return SubmitDraftSessionCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewStageSequencer(),
		ledger:     services.NewEscrowLedger(),
	}
}

func (h *SubmitDraftSessionCommandHandler) Handle(ctx context.Context, cmd DraftSessionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draftRepo := uow.DraftSessionRepository()

	session, err := getOwnedSession(ctx, draftRepo, cmd.SessionID(), cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	createCmd, err := NewCreateOrderCommandFromDraft(session.CustomerID(), session.Contents())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	o, err := buildOrder(h.sequencer, createCmd, now)
	if err != nil {
		return nil, err
	}

	if err = persistNewOrder(ctx, uow.OrderRepository(), uow.EscrowRepository(), h.ledger, o, now); err != nil {
		return nil, newOrderCreationFailedError(o.ID(), err)
	}

	if err = draftRepo.Delete(ctx, session.ID()); err != nil {
		return nil, newOrderCreationFailedError(o.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, newOrderCreationFailedError(o.ID(), err)
	}

	return o, nil
}

// getOwnedSession hides sessions of other customers behind a not-found error.
func getOwnedSession(
	ctx context.Context,
	repo ports.DraftSessionRepository,
	sessionID, customerID kernel.UUID,
) (*draft.Session, error) {
	session, err := repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.BelongsTo(customerID) {
		return nil, errs.NewObjectNotFoundError("draft session", sessionID.String())
	}

	return session, nil
}

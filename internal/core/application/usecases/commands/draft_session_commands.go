package commands

import (
	"errors"

	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/guard"
)

var (
	ErrOpenDraftSessionCommandIsNotConstructed = errors.New(
		"OpenDraftSessionCommand must be created via NewOpenDraftSessionCommand constructor",
	)
	ErrSaveDraftSessionCommandIsNotConstructed = errors.New(
		"SaveDraftSessionCommand must be created via NewSaveDraftSessionCommand constructor",
	)
	ErrDraftSessionCommandIsNotConstructed = errors.New(
		"DraftSessionCommand must be created via NewDraftSessionCommand constructor",
	)
)

// OpenDraftSessionCommand starts an empty ordering flow for a customer.
type OpenDraftSessionCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewOpenDraftSessionCommand(customerID kernel.UUID) (OpenDraftSessionCommand, error) {
	if err := customerID.Validate(); err != nil {
		return OpenDraftSessionCommand{}, err
	}

	return OpenDraftSessionCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c OpenDraftSessionCommand) Validate() error {
	return c.guard.Validate(ErrOpenDraftSessionCommandIsNotConstructed)
}

func (c OpenDraftSessionCommand) CustomerID() kernel.UUID { return c.customerID }

// SaveDraftSessionCommand replaces everything entered so far in a session.
// Contents are stored as typed; they are validated only on submit.
type SaveDraftSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	customerID kernel.UUID
	contents   draft.Contents

	guard guard.ConstructorGuard
}

func NewSaveDraftSessionCommand(sessionID, customerID kernel.UUID, contents draft.Contents) (SaveDraftSessionCommand, error) {
	if err := errors.Join(sessionID.Validate(), customerID.Validate()); err != nil {
		return SaveDraftSessionCommand{}, err
	}

	return SaveDraftSessionCommand{
		sessionID:  sessionID,
		customerID: customerID,
		contents:   contents,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SaveDraftSessionCommand) Validate() error {
	return c.guard.Validate(ErrSaveDraftSessionCommandIsNotConstructed)
}

func (c SaveDraftSessionCommand) SessionID() kernel.UUID   { return c.sessionID }
func (c SaveDraftSessionCommand) CustomerID() kernel.UUID  { return c.customerID }
func (c SaveDraftSessionCommand) Contents() draft.Contents { return c.contents }

// DraftSessionCommand addresses an existing session on behalf of its owner.
// It is used to discard a session and to submit it as an order.
type DraftSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDraftSessionCommand(sessionID, customerID kernel.UUID) (DraftSessionCommand, error) {
	if err := errors.Join(sessionID.Validate(), customerID.Validate()); err != nil {
		return DraftSessionCommand{}, err
	}

	return DraftSessionCommand{sessionID: sessionID, customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c DraftSessionCommand) Validate() error {
	return c.guard.Validate(ErrDraftSessionCommandIsNotConstructed)
}

func (c DraftSessionCommand) SessionID() kernel.UUID  { return c.sessionID }
func (c DraftSessionCommand) CustomerID() kernel.UUID { return c.customerID }

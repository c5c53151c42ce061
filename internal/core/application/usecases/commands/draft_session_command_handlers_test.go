package commands_test

import (
	"testing"
	"time"

	"errand/internal/core/application/usecases/commands"
	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type draftFixture struct {
	draftRepo    *MockDraftSessionRepository
	orderRepo    *MockOrderRepository
	escrowRepo   *MockEscrowRepository
	uow          *MockUoW
	draftFactory *MockDraftUoWFactory
	factory      *MockUoWFactory
}

func newDraftFixture() *draftFixture {
	f := &draftFixture{
		draftRepo:    new(MockDraftSessionRepository),
		orderRepo:    new(MockOrderRepository),
		escrowRepo:   new(MockEscrowRepository),
		uow:          newTxUoW(),
		draftFactory: new(MockDraftUoWFactory),
		factory:      new(MockUoWFactory),
	}
	f.uow.On("DraftSessionRepository").Return(f.draftRepo).Maybe()
	f.uow.On("OrderRepository").Return(f.orderRepo).Maybe()
	f.uow.On("EscrowRepository").Return(f.escrowRepo).Maybe()
	f.draftFactory.On("Create").Return(f.uow).Maybe()
	f.factory.On("Create").Return(f.uow).Maybe()
	return f
}

func groceryContents() draft.Contents {
	return draft.Contents{
		OrderType: "PURCHASE_DELIVER",
		Status:    "payment_pending",
		Currency:  "sar",
		Totals:    draft.Totals{Subtotal: decimal.NewFromInt(40), DeliveryFee: decimal.NewFromInt(10), Total: decimal.NewFromInt(50)},
		Pickup:    &draft.Point{Lat: 24.71, Lng: 46.67, Address: "Tamimi"},
		Dropoff:   &draft.Point{Lat: 24.77, Lng: 46.73, Address: "Home"},
		Items:     []draft.Item{{Description: "eggs", Quantity: 2, Price: decimal.NewFromInt(20)}},
	}
}

func storedSession(t *testing.T, customerID kernel.UUID, contents draft.Contents) *draft.Session {
	t.Helper()
	now := time.Now().UTC()
	s, err := draft.RestoreSession(kernel.NewUUID(), customerID, contents, now.Add(-time.Minute), now)
	require.NoError(t, err)
	return s
}

func TestOpenDraftSessionCommandHandler(t *testing.T) {
	f := newDraftFixture()
	customerID := kernel.NewUUID()
	f.draftRepo.On("Add", mock.Anything, mock.AnythingOfType("*draft.Session")).Return(nil).Once()

	cmd, err := commands.NewOpenDraftSessionCommand(customerID)
	require.NoError(t, err)
	h := commands.NewOpenDraftSessionCommandHandler(f.draftFactory)

	session, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.True(t, session.BelongsTo(customerID))
	assert.Empty(t, session.Contents().Items)
	f.draftRepo.AssertExpectations(t)
	f.uow.AssertCalled(t, "Commit", mock.Anything)
}

func TestSaveDraftSessionCommandHandler(t *testing.T) {
	f := newDraftFixture()
	customerID := kernel.NewUUID()
	session := storedSession(t, customerID, draft.Contents{})
	f.draftRepo.On("Get", mock.Anything, session.ID()).Return(session, nil).Once()
	f.draftRepo.On("Update", mock.Anything, session).Return(nil).Once()

	cmd, err := commands.NewSaveDraftSessionCommand(session.ID(), customerID, groceryContents())
	require.NoError(t, err)
	h := commands.NewSaveDraftSessionCommandHandler(f.draftFactory)

	saved, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "PURCHASE_DELIVER", saved.Contents().OrderType)
	assert.Len(t, saved.Contents().Items, 1)
	f.draftRepo.AssertExpectations(t)
}

func TestSaveDraftSessionCommandHandler_ForeignSession(t *testing.T) {
	f := newDraftFixture()
	session := storedSession(t, kernel.NewUUID(), draft.Contents{})
	f.draftRepo.On("Get", mock.Anything, session.ID()).Return(session, nil).Once()

	cmd, _ := commands.NewSaveDraftSessionCommand(session.ID(), kernel.NewUUID(), groceryContents())
	h := commands.NewSaveDraftSessionCommandHandler(f.draftFactory)

	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.draftRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDiscardDraftSessionCommandHandler(t *testing.T) {
	f := newDraftFixture()
	customerID := kernel.NewUUID()
	session := storedSession(t, customerID, groceryContents())
	f.draftRepo.On("Get", mock.Anything, session.ID()).Return(session, nil).Once()
	f.draftRepo.On("Delete", mock.Anything, session.ID()).Return(nil).Once()

	cmd, _ := commands.NewDraftSessionCommand(session.ID(), customerID)
	h := commands.NewDiscardDraftSessionCommandHandler(f.draftFactory)

	require.NoError(t, h.Handle(t.Context(), cmd))
	f.draftRepo.AssertExpectations(t)
}

func TestSubmitDraftSessionCommandHandler_CreatesOrderAndClearsSession(t *testing.T) {
	f := newDraftFixture()
	customerID := kernel.NewUUID()
	session := storedSession(t, customerID, groceryContents())

	f.draftRepo.On("Get", mock.Anything, session.ID()).Return(session, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.escrowRepo.On("Add", mock.Anything, mock.AnythingOfType("*escrow.Transaction")).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.draftRepo.On("Delete", mock.Anything, session.ID()).Return(nil).Once()

	cmd, err := commands.NewDraftSessionCommand(session.ID(), customerID)
	require.NoError(t, err)
	h := commands.NewSubmitDraftSessionCommandHandler(f.factory)

	created, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, customerID, created.CustomerID())
	assert.Equal(t, order.PaymentPending, created.Status())
	assert.Equal(t, order.EscrowHeld, created.EscrowStatus())
	assert.Equal(t, "SAR", created.Currency())
	require.Len(t, created.Stages(), 2)
	assert.Equal(t, order.StagePurchase, created.Stages()[0].Type())
	f.draftRepo.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
	f.escrowRepo.AssertExpectations(t)
	f.uow.AssertCalled(t, "Commit", mock.Anything)
}

func TestSubmitDraftSessionCommandHandler_InvalidContentsKeepSession(t *testing.T) {
	f := newDraftFixture()
	customerID := kernel.NewUUID()
	contents := groceryContents()
	contents.Dropoff = nil
	session := storedSession(t, customerID, contents)
	f.draftRepo.On("Get", mock.Anything, session.ID()).Return(session, nil).Once()

	cmd, _ := commands.NewDraftSessionCommand(session.ID(), customerID)
	h := commands.NewSubmitDraftSessionCommandHandler(f.factory)

	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.NotErrorIs(t, err, commands.ErrOrderCreationFailed)
	f.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.draftRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitDraftSessionCommandHandler_DeleteFailureRollsBack(t *testing.T) {
	f := newDraftFixture()
	customerID := kernel.NewUUID()
	contents := groceryContents()
	contents.Status = "draft"
	session := storedSession(t, customerID, contents)

	f.draftRepo.On("Get", mock.Anything, session.ID()).Return(session, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.draftRepo.On("Delete", mock.Anything, session.ID()).Return(assert.AnError).Once()

	cmd, _ := commands.NewDraftSessionCommand(session.ID(), customerID)
	h := commands.NewSubmitDraftSessionCommandHandler(f.factory)

	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrOrderCreationFailed)
	require.ErrorIs(t, err, assert.AnError)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertCalled(t, "Rollback", mock.Anything)
}

func TestNewDraftSessionCommand_RequiresIDs(t *testing.T) {
	_, err := commands.NewDraftSessionCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewOpenDraftSessionCommand(kernel.UUID{})
	require.Error(t, err)
}

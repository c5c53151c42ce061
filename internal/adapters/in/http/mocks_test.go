package http_test

import (
	"context"

	"errand/internal/core/application/usecases/commands"
	"errand/internal/core/application/usecases/queries"
	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if build, ok := args.Get(0).(func(commands.CreateOrderCommand) *order.Order); ok {
		return build(cmd), args.Error(1)
	}
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockSettleEscrowHandler struct{ mock.Mock }

func (m *MockSettleEscrowHandler) Handle(ctx context.Context, cmd commands.SettleEscrowCommand) (*escrow.Transaction, error) {
	args := m.Called(ctx, cmd)
	t, _ := args.Get(0).(*escrow.Transaction)
	return t, args.Error(1)
}

type MockSweepHandler struct{ mock.Mock }

func (m *MockSweepHandler) Handle(ctx context.Context, cmd commands.SweepPickupRemindersCommand) (commands.SweepResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SweepResult), args.Error(1)
}

type MockDiscardDraftHandler struct{ mock.Mock }

func (m *MockDiscardDraftHandler) Handle(ctx context.Context, cmd commands.DraftSessionCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSaveDraftHandler struct{ mock.Mock }

func (m *MockSaveDraftHandler) Handle(ctx context.Context, cmd commands.SaveDraftSessionCommand) (*draft.Session, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*draft.Session)
	return s, args.Error(1)
}

type MockSubmitDraftHandler struct{ mock.Mock }

func (m *MockSubmitDraftHandler) Handle(ctx context.Context, cmd commands.DraftSessionCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockListCustomerOrdersHandler struct{ mock.Mock }

func (m *MockListCustomerOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListCustomerOrdersQuery,
) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	s, _ := args.Get(0).([]queries.OrderSummary)
	return s, args.Error(1)
}

type MockGetDraftHandler struct{ mock.Mock }

func (m *MockGetDraftHandler) Handle(ctx context.Context, query queries.GetDraftSessionQuery) (*draft.Session, error) {
	args := m.Called(ctx, query)
	s, _ := args.Get(0).(*draft.Session)
	return s, args.Error(1)
}

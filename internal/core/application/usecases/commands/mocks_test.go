package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"errand/internal/core/application/usecases/commands"
	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/notification"
	"errand/internal/core/domain/model/order"
	"errand/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllCompletedUpdatedBefore(ctx context.Context, threshold time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, threshold)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetAllCompletedUpdatedBetween(ctx context.Context, after, upTo time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, after, upTo)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockEscrowRepository struct{ mock.Mock }

func (m *MockEscrowRepository) Add(ctx context.Context, tx *escrow.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockEscrowRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*escrow.Transaction, error) {
	args := m.Called(ctx, orderID)
	txs, _ := args.Get(0).([]*escrow.Transaction)
	return txs, args.Error(1)
}

type MockDraftSessionRepository struct{ mock.Mock }

func (m *MockDraftSessionRepository) Add(ctx context.Context, s *draft.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockDraftSessionRepository) Update(ctx context.Context, s *draft.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockDraftSessionRepository) Get(ctx context.Context, id kernel.UUID) (*draft.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*draft.Session)
	return s, args.Error(1)
}

func (m *MockDraftSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) EscrowRepository() ports.EscrowRepository {
	args := m.Called()
	return args.Get(0).(ports.EscrowRepository)
}

func (m *MockUoW) DraftSessionRepository() ports.DraftSessionRepository {
	args := m.Called()
	return args.Get(0).(ports.DraftSessionRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderEscrowUoWFactory struct{ mock.Mock }

func (m *MockOrderEscrowUoWFactory) Create() commands.OrderEscrowUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderEscrowUoW)
}

type MockDraftUoWFactory struct{ mock.Mock }

func (m *MockDraftUoWFactory) Create() commands.DraftUoW {
	args := m.Called()
	return args.Get(0).(commands.DraftUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockSweepLocker struct{ mock.Mock }

func (m *MockSweepLocker) Acquire(
	ctx context.Context,
	name string,
	now time.Time,
	minInterval time.Duration,
) (ports.SweepLease, bool, error) {
	args := m.Called(ctx, name, now, minInterval)
	lease, _ := args.Get(0).(ports.SweepLease)
	return lease, args.Bool(1), args.Error(2)
}

type MockSweepLease struct{ mock.Mock }

func (m *MockSweepLease) Complete(ctx context.Context, sweptAt time.Time) error {
	args := m.Called(ctx, sweptAt)
	return args.Error(0)
}

func (m *MockSweepLease) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// newTxUoW returns a unit of work whose transaction calls always succeed.
func newTxUoW() *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Maybe()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return uow
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustLocation(t *testing.T, lat, lng float64, address string) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng, address)
	require.NoError(t, err)
	return loc
}

func mustSAR(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.NewFromInt(amount), "SAR")
	require.NoError(t, err)
	return m
}

// purchaseDeliverCommand is a PURCHASE_DELIVER order with two items and a total of 150.
func purchaseDeliverCommand(t *testing.T, status order.Status) commands.CreateOrderCommand {
	t.Helper()

	totals, err := order.NewTotals(decimal.NewFromInt(130), decimal.NewFromInt(15), decimal.NewFromInt(5), decimal.NewFromInt(150))
	require.NoError(t, err)

	pickup := mustLocation(t, 24.71, 46.67, "Panda, Olaya St")
	header, err := order.NewHeader(order.PurchaseDeliver, status, totals, "SAR", &pickup, mustLocation(t, 24.77, 46.73, "Home"), "")
	require.NoError(t, err)

	milk, err := order.NewItemSpec("", "milk", 2, decimal.NewFromInt(15))
	require.NoError(t, err)
	bread, err := order.NewItemSpec("SKU-42", "", 1, decimal.NewFromInt(100))
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), header, []order.ItemSpec{milk, bread})
	require.NoError(t, err)
	return cmd
}

// restoredOrder loads an order in the given state, the way a repository would.
func restoredOrder(t *testing.T, status order.Status, escrowStatus order.EscrowStatus, total int64, updatedAt time.Time) *order.Order {
	t.Helper()

	totals, err := order.NewTotals(decimal.NewFromInt(total), decimal.Zero, decimal.Zero, decimal.NewFromInt(total))
	require.NoError(t, err)

	id := kernel.NewUUID()
	dropoff := mustLocation(t, 24.77, 46.73, "Home")
	stage, err := order.RestoreStage(kernel.NewUUID(), id, order.StageSpec{
		Type:       order.StageDropoff,
		SequenceNo: 1,
		Location:   &dropoff,
	}, order.StagePending)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.Snapshot{
		ID:           id,
		CustomerID:   kernel.NewUUID(),
		Type:         order.DirectDropoff,
		Status:       status,
		EscrowStatus: escrowStatus,
		Totals:       totals,
		Currency:     "SAR",
		Dropoff:      dropoff,
		Stages:       []*order.Stage{stage},
		CreatedAt:    updatedAt.Add(-time.Hour),
		UpdatedAt:    updatedAt,
	})
	require.NoError(t, err)
	return o
}

package services_test

import (
	"testing"
	"time"

	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sar(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.RequireFromString(amount), "SAR")
	require.NoError(t, err)
	return m
}

func TestEscrowLedger_PlaceHold(t *testing.T) {
	ledger := services.NewEscrowLedger()
	orderID := kernel.NewUUID()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tx, err := ledger.PlaceHold(orderID, sar(t, "150.50"), now)

	require.NoError(t, err)
	assert.Equal(t, escrow.Hold, tx.Type())
	assert.Equal(t, escrow.Completed, tx.Status())
	assert.True(t, tx.OrderID().IsEqual(orderID))
	assert.Equal(t, "150.50 SAR", tx.Amount().String())
	require.NotNil(t, tx.CompletedAt())
	assert.Equal(t, now, *tx.CompletedAt())
}

func TestEscrowLedger_PlaceHold_InvalidAmount(t *testing.T) {
	_, err := services.NewEscrowLedger().PlaceHold(kernel.NewUUID(), sar(t, "0"), time.Now())

	require.ErrorIs(t, err, escrow.ErrInvalidAmount)
}

func TestEscrowLedger_ReleaseAndRefund(t *testing.T) {
	ledger := services.NewEscrowLedger()
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	hold, err := ledger.PlaceHold(orderID, sar(t, "100"), now)
	require.NoError(t, err)
	history := []*escrow.Transaction{hold}

	release, err := ledger.Release(orderID, sar(t, "60"), history, now)
	require.NoError(t, err)
	assert.Equal(t, escrow.Release, release.Type())
	history = append(history, release)

	balance, err := ledger.Balance(orderID, history)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(balance.Amount()))

	_, err = ledger.Refund(orderID, sar(t, "40.01"), history, now)
	require.ErrorIs(t, err, escrow.ErrOverRelease)

	refund, err := ledger.Refund(orderID, sar(t, "40"), history, now)
	require.NoError(t, err)
	history = append(history, refund)

	balance, err = ledger.Balance(orderID, history)
	require.NoError(t, err)
	assert.True(t, balance.Amount().IsZero())
}

func TestEscrowLedger_IgnoresIncompleteAndForeignEntries(t *testing.T) {
	ledger := services.NewEscrowLedger()
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	hold, err := ledger.PlaceHold(orderID, sar(t, "50"), now)
	require.NoError(t, err)
	pending, err := escrow.NewTransaction(kernel.NewUUID(), orderID, escrow.Release, sar(t, "50"), now)
	require.NoError(t, err)
	foreign, err := ledger.PlaceHold(kernel.NewUUID(), sar(t, "500"), now)
	require.NoError(t, err)

	balance, err := ledger.Balance(orderID, []*escrow.Transaction{hold, pending, foreign})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(balance.Amount()))
}

func TestEscrowLedger_SettleErrors(t *testing.T) {
	ledger := services.NewEscrowLedger()
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	_, err := ledger.Release(orderID, sar(t, "1"), nil, now)
	require.ErrorIs(t, err, escrow.ErrNoHold)

	hold, err := ledger.PlaceHold(orderID, sar(t, "10"), now)
	require.NoError(t, err)
	history := []*escrow.Transaction{hold}

	_, err = ledger.Release(orderID, sar(t, "0"), history, now)
	require.ErrorIs(t, err, escrow.ErrInvalidAmount)

	_, err = ledger.Release(orderID, sar(t, "10.01"), history, now)
	require.ErrorIs(t, err, escrow.ErrOverRelease)

	usd, err := kernel.NewMoney(decimal.NewFromInt(1), "USD")
	require.NoError(t, err)
	_, err = ledger.Refund(orderID, usd, history, now)
	require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
}

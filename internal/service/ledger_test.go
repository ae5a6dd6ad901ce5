package service

import (
	"context"
	"errors"
	"testing"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedger_Settle(t *testing.T) {
	const receiverNumber = "30000000000000000001"

	t.Run("debits source and credits resolved target", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		ledger := NewLedger(testLogger())
		ctx := context.Background()

		source := activeAccount(uuid.New(), "20000000000000000001", "1000")
		target := activeAccount(uuid.New(), receiverNumber, "50")
		tr := pendingTransfer(source.UserID, source, receiverNumber, "300")

		accounts.On("FindByAccountNumber", ctx, receiverNumber).Return(target, nil)
		accounts.On("FindByIDForUpdate", ctx, source.ID).Return(source, nil)
		accounts.On("FindByIDForUpdate", ctx, target.ID).Return(target, nil)
		accounts.On("UpdateBalances", ctx, source).Return(nil)
		accounts.On("UpdateBalances", ctx, target).Return(nil)

		settlement, err := ledger.Settle(ctx, accounts, tr)

		require.NoError(t, err)
		assert.False(t, settlement.CreditSkipped)
		assert.Equal(t, "700.000", source.Balance.StringFixed(3))
		assert.Equal(t, "350.000", target.Balance.StringFixed(3))
		assert.True(t, source.AvailableBalance.Equal(source.Balance.Sub(source.BlockedAmount)))
		assert.Same(t, target, settlement.Target)
	})

	t.Run("unknown target debits and records a gap", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		ledger := NewLedger(testLogger())
		ctx := context.Background()

		source := activeAccount(uuid.New(), "20000000000000000001", "1000")
		tr := pendingTransfer(source.UserID, source, receiverNumber, "300")

		accounts.On("FindByAccountNumber", ctx, receiverNumber).Return(nil, models.ErrNotFound)
		accounts.On("FindByIDForUpdate", ctx, source.ID).Return(source, nil)
		accounts.On("UpdateBalances", ctx, source).Return(nil)

		settlement, err := ledger.Settle(ctx, accounts, tr)

		require.NoError(t, err)
		assert.True(t, settlement.CreditSkipped)
		assert.Nil(t, settlement.Target)
		assert.Equal(t, "700.000", source.Balance.StringFixed(3))
	})

	t.Run("closed target is skipped", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		ledger := NewLedger(testLogger())
		ctx := context.Background()

		source := activeAccount(uuid.New(), "20000000000000000001", "1000")
		target := activeAccount(uuid.New(), receiverNumber, "50")
		target.Status = models.AccountStatusClosed
		tr := pendingTransfer(source.UserID, source, receiverNumber, "300")

		accounts.On("FindByAccountNumber", ctx, receiverNumber).Return(target, nil)
		accounts.On("FindByIDForUpdate", ctx, source.ID).Return(source, nil)
		accounts.On("FindByIDForUpdate", ctx, target.ID).Return(target, nil)
		accounts.On("UpdateBalances", ctx, source).Return(nil)

		settlement, err := ledger.Settle(ctx, accounts, tr)

		require.NoError(t, err)
		assert.True(t, settlement.CreditSkipped)
		assert.Equal(t, "50.000", target.Balance.StringFixed(3))
		accounts.AssertNotCalled(t, "UpdateBalances", ctx, target)
	})

	t.Run("insufficient funds leaves balances untouched", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		ledger := NewLedger(testLogger())
		ctx := context.Background()

		source := activeAccount(uuid.New(), "20000000000000000001", "50")
		tr := pendingTransfer(source.UserID, source, receiverNumber, "300")

		accounts.On("FindByAccountNumber", ctx, receiverNumber).Return(nil, models.ErrNotFound)
		accounts.On("FindByIDForUpdate", ctx, source.ID).Return(source, nil)

		_, err := ledger.Settle(ctx, accounts, tr)

		assert.ErrorIs(t, err, models.ErrInsufficientFunds)
		assert.Equal(t, "50.000", source.Balance.StringFixed(3))
		accounts.AssertNotCalled(t, "UpdateBalances", mock.Anything, mock.Anything)
	})

	t.Run("suspended source is not transactable", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		ledger := NewLedger(testLogger())
		ctx := context.Background()

		source := activeAccount(uuid.New(), "20000000000000000001", "1000")
		source.Status = models.AccountStatusSuspended
		tr := pendingTransfer(source.UserID, source, receiverNumber, "300")

		accounts.On("FindByAccountNumber", ctx, receiverNumber).Return(nil, models.ErrNotFound)
		accounts.On("FindByIDForUpdate", ctx, source.ID).Return(source, nil)

		_, err := ledger.Settle(ctx, accounts, tr)

		assert.ErrorIs(t, err, models.ErrAccountNotTransactable)
	})

	t.Run("transfer to own account nets to zero", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		ledger := NewLedger(testLogger())
		ctx := context.Background()

		source := activeAccount(uuid.New(), "20000000000000000001", "1000")
		tr := pendingTransfer(source.UserID, source, source.AccountNumber, "300")

		accounts.On("FindByAccountNumber", ctx, source.AccountNumber).Return(source, nil)
		accounts.On("FindByIDForUpdate", ctx, source.ID).Return(source, nil).Once()
		accounts.On("UpdateBalances", ctx, source).Return(nil).Once()

		settlement, err := ledger.Settle(ctx, accounts, tr)

		require.NoError(t, err)
		assert.Same(t, source, settlement.Target)
		assert.Equal(t, "1000.000", source.Balance.StringFixed(3))
	})

	t.Run("resolution failure aborts", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		ledger := NewLedger(testLogger())
		ctx := context.Background()

		source := activeAccount(uuid.New(), "20000000000000000001", "1000")
		tr := pendingTransfer(source.UserID, source, receiverNumber, "300")
		dbErr := errors.New("connection reset")

		accounts.On("FindByAccountNumber", ctx, receiverNumber).Return(nil, dbErr)

		_, err := ledger.Settle(ctx, accounts, tr)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestLockPair_OrdersByID(t *testing.T) {
	accounts := mocks.NewMockAccountRepository(t)
	ctx := context.Background()

	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	var order []uuid.UUID
	record := func(args mock.Arguments) { order = append(order, args.Get(1).(uuid.UUID)) }
	accounts.On("FindByIDForUpdate", ctx, low).Run(record).Return(&models.Account{ID: low}, nil)
	accounts.On("FindByIDForUpdate", ctx, high).Run(record).Return(&models.Account{ID: high}, nil)

	source, target, err := lockPair(ctx, accounts, high, &low)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{low, high}, order)
	assert.Equal(t, high, source.ID)
	assert.Equal(t, low, target.ID)
}

func TestLockPair_TargetVanished(t *testing.T) {
	accounts := mocks.NewMockAccountRepository(t)
	ctx := context.Background()

	sourceID := uuid.New()
	targetID := uuid.New()
	accounts.On("FindByIDForUpdate", ctx, sourceID).Return(&models.Account{ID: sourceID}, nil)
	accounts.On("FindByIDForUpdate", ctx, targetID).Return(nil, models.ErrNotFound)

	source, target, err := lockPair(ctx, accounts, sourceID, &targetID)

	require.NoError(t, err)
	assert.Equal(t, sourceID, source.ID)
	assert.Nil(t, target)
}

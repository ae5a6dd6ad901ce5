package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/repository"
	"github.com/google/uuid"
)

// Ledger applies the debit/credit pair of a transfer. It must be given an
// AccountRepository bound to the transaction that also persists the transfer.
type Ledger struct {
	logger *slog.Logger
}

// NewLedger creates a new Ledger
func NewLedger(logger *slog.Logger) *Ledger {
	return &Ledger{logger: logger}
}

// Settlement is the result of a successful ledger movement
type Settlement struct {
	Source *models.Account
	// Target is nil when the credit was skipped.
	Target        *models.Account
	CreditSkipped bool
}

// Settle locks the source and, when it resolves inside this ledger, the target
// account, re-checks the limit policy and moves the funds. It returns
// models.ErrInsufficientFunds or models.ErrAccountNotTransactable without
// touching any balance when the source cannot pay.
//
// A beneficiary account number that does not resolve, or resolves to a closed
// account, still debits the source. The missing credit is logged as a
// reconciliation gap.
func (l *Ledger) Settle(ctx context.Context, accounts repository.AccountRepository, t *models.Transfer) (*Settlement, error) {
	var targetID *uuid.UUID
	resolved, err := accounts.FindByAccountNumber(ctx, t.BeneficiaryAccountNumber)
	switch {
	case err == nil:
		targetID = &resolved.ID
	case !errors.Is(err, models.ErrNotFound):
		return nil, fmt.Errorf("failed to resolve receiving account: %w", err)
	}

	source, target, err := lockPair(ctx, accounts, t.FromAccountID, targetID)
	if err != nil {
		return nil, err
	}

	if !CanTransfer(source, t.TotalAmount) {
		if source.Status != models.AccountStatusActive {
			return nil, models.ErrAccountNotTransactable
		}
		return nil, models.ErrInsufficientFunds
	}

	if err := source.Debit(t.TotalAmount); err != nil {
		return nil, err
	}

	settlement := &Settlement{Source: source}
	if target != nil {
		if err := target.Credit(t.Amount); err != nil {
			if !errors.Is(err, models.ErrAccountClosed) {
				return nil, err
			}
			target = nil
		}
	}

	if err := accounts.UpdateBalances(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to persist debit: %w", err)
	}

	if target == nil {
		settlement.CreditSkipped = true
		l.logger.Warn("receiving account unavailable, credit skipped",
			"reconciliation_gap", true,
			"transfer_id", t.ID,
			"reference", t.Reference,
			"account_number", t.BeneficiaryAccountNumber,
			"amount", t.Amount.StringFixed(models.MoneyScale),
		)
		return settlement, nil
	}

	if target != source {
		if err := accounts.UpdateBalances(ctx, target); err != nil {
			return nil, fmt.Errorf("failed to persist credit: %w", err)
		}
	}
	settlement.Target = target

	l.logger.Info("ledger movement applied",
		"transfer_id", t.ID,
		"reference", t.Reference,
		"amount", t.Amount.StringFixed(models.MoneyScale),
		"account_number", target.AccountNumber,
	)

	return settlement, nil
}

// lockPair takes row locks on the source and optional target in ascending id
// order so two opposite transfers cannot deadlock. A target that disappeared
// between resolution and locking is returned as nil.
func lockPair(
	ctx context.Context,
	accounts repository.AccountRepository,
	sourceID uuid.UUID,
	targetID *uuid.UUID,
) (*models.Account, *models.Account, error) {
	if targetID == nil || *targetID == sourceID {
		source, err := accounts.FindByIDForUpdate(ctx, sourceID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to lock source account: %w", err)
		}
		if targetID == nil {
			return source, nil, nil
		}
		return source, source, nil
	}

	first, second := sourceID, *targetID
	if bytes.Compare(second[:], first[:]) < 0 {
		first, second = second, first
	}

	locked := make(map[uuid.UUID]*models.Account, 2)
	for _, id := range []uuid.UUID{first, second} {
		account, err := accounts.FindByIDForUpdate(ctx, id)
		if err != nil {
			if id != sourceID && errors.Is(err, models.ErrNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("failed to lock account: %w", err)
		}
		locked[id] = account
	}

	return locked[sourceID], locked[*targetID], nil
}

package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestTransferService(notifier Notifier, refs ...string) *TransferService {
	s := NewTransferService(nil, notifier, TransferSettings{
		Currency:        "TND",
		MaxAmount:       decimal.RequireFromString("1000000"),
		ReasonMaxLength: 500,
	}, testLogger())
	s.now = func() time.Time { return fixedNow }

	if len(refs) > 0 {
		var mu sync.Mutex
		next := 0
		s.newReference = func() (string, error) {
			mu.Lock()
			defer mu.Unlock()
			ref := refs[next%len(refs)]
			next++
			return ref, nil
		}
	}
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func activeAccount(userID uuid.UUID, number, balance string) *models.Account {
	a := &models.Account{
		ID:            uuid.New(),
		UserID:        userID,
		AccountNumber: number,
		Balance:       dec(balance),
		Currency:      "TND",
		Status:        models.AccountStatusActive,
	}
	a.RecomputeAvailable()
	return a
}

func pendingTransfer(owner uuid.UUID, from *models.Account, beneficiaryNumber, amount string) *models.Transfer {
	t := &models.Transfer{
		ID:                       uuid.New(),
		Reference:                "STB17170000000001234",
		FromAccountID:            from.ID,
		BeneficiaryID:            uuid.New(),
		UserID:                   owner,
		Amount:                   dec(amount),
		Fees:                     decimal.Zero,
		Currency:                 "TND",
		Reason:                   "rent",
		Status:                   models.TransferStatusPending,
		BeneficiaryAccountNumber: beneficiaryNumber,
		SourceAccountNumber:      from.AccountNumber,
	}
	t.RecomputeTotal()
	return t
}

type notification struct {
	kind       string
	transfer   models.Transfer
	receiverID *uuid.UUID
}

// recordingNotifier captures notifications synchronously.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notification
}

func (n *recordingNotifier) record(kind string, t models.Transfer, receiverID *uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notification{kind: kind, transfer: t, receiverID: receiverID})
}

func (n *recordingNotifier) TransferCreated(_ context.Context, t models.Transfer) {
	n.record("created", t, nil)
}

func (n *recordingNotifier) TransferApproved(_ context.Context, t models.Transfer, receiverID *uuid.UUID) {
	n.record("approved", t, receiverID)
}

func (n *recordingNotifier) TransferCompleted(_ context.Context, t models.Transfer, receiverID *uuid.UUID) {
	n.record("completed", t, receiverID)
}

func (n *recordingNotifier) TransferRejected(_ context.Context, t models.Transfer) {
	n.record("rejected", t, nil)
}

func (n *recordingNotifier) TransferFailed(_ context.Context, t models.Transfer) {
	n.record("failed", t, nil)
}

func (n *recordingNotifier) kinds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.kind)
	}
	return out
}

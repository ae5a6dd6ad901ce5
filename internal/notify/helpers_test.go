package notify

import (
	"context"
	"errors"
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

type recordingPublisher struct {
	mu       sync.Mutex
	messages []Message
	fail     map[uuid.UUID]bool
	calls    int
}

func (p *recordingPublisher) Publish(_ context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.fail[msg.RecipientID] {
		return errors.New("broker unavailable")
	}
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) published() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Message(nil), p.messages...)
}

func sampleTransfer() models.Transfer {
	t := models.Transfer{
		ID:                       uuid.MustParse("5f0c6f52-2b54-4f6b-9d0a-2d3f4b7c1a11"),
		UserID:                   uuid.New(),
		Reference:                "STB17172320000001234",
		Amount:                   decimal.RequireFromString("300"),
		Currency:                 "TND",
		Reason:                   "rent",
		Status:                   models.TransferStatusPending,
		BeneficiaryName:          "Sami Ben Ali",
		BeneficiaryAccountNumber: "10000000000000000002",
		SenderFirstName:          "Amira",
		SenderLastName:           "Trabelsi",
	}
	t.CreatedAt = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	t.RecomputeTotal()
	return t
}

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/repository"
	"github.com/benx421/bank-transfers/internal/service"
	"github.com/google/uuid"
)

// DefaultDispatchTimeout bounds one dispatch, including the admin lookup.
const DefaultDispatchTimeout = 10 * time.Second

// TransferNotifier turns transfer state changes into broker messages. Every
// call returns immediately; delivery happens on a goroutine with its own
// deadline and failures are only logged.
type TransferNotifier struct {
	users     repository.UserRepository
	publisher Publisher
	payloads  *PayloadBuilder
	logger    *slog.Logger
	wg        sync.WaitGroup
	timeout   time.Duration
}

var _ service.Notifier = (*TransferNotifier)(nil)

// NewTransferNotifier creates a new TransferNotifier
func NewTransferNotifier(
	users repository.UserRepository,
	publisher Publisher,
	payloads *PayloadBuilder,
	logger *slog.Logger,
) *TransferNotifier {
	return &TransferNotifier{
		users:     users,
		publisher: publisher,
		payloads:  payloads,
		logger:    logger,
		timeout:   DefaultDispatchTimeout,
	}
}

// TransferCreated tells every administrator a new transfer awaits review
func (n *TransferNotifier) TransferCreated(ctx context.Context, t models.Transfer) {
	n.dispatch(ctx, KindTransferCreated, t, func(ctx context.Context) ([]Message, error) {
		admins, err := n.users.ListByRole(ctx, models.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to list administrators: %w", err)
		}

		payload := n.payloads.Build(t)
		msgs := make([]Message, 0, len(admins))
		for _, admin := range admins {
			msgs = append(msgs, Message{Kind: KindTransferCreated, RecipientID: admin.ID, Payload: payload})
		}
		return msgs, nil
	})
}

// TransferApproved tells the sender about the approval and the receiver about the credit
func (n *TransferNotifier) TransferApproved(ctx context.Context, t models.Transfer, receiverID *uuid.UUID) {
	n.dispatch(ctx, KindTransferApproved, t, func(context.Context) ([]Message, error) {
		msgs := []Message{{Kind: KindTransferApproved, RecipientID: t.UserID, Payload: n.payloads.Build(t)}}
		return append(msgs, n.receiverMessages(t, receiverID)...), nil
	})
}

// TransferCompleted tells the sender and, when known, the receiver
func (n *TransferNotifier) TransferCompleted(ctx context.Context, t models.Transfer, receiverID *uuid.UUID) {
	n.dispatch(ctx, KindTransferCompleted, t, func(context.Context) ([]Message, error) {
		msgs := []Message{{Kind: KindTransferCompleted, RecipientID: t.UserID, Payload: n.payloads.Build(t)}}
		return append(msgs, n.receiverMessages(t, receiverID)...), nil
	})
}

// TransferRejected tells the sender why the transfer was cancelled
func (n *TransferNotifier) TransferRejected(ctx context.Context, t models.Transfer) {
	n.dispatch(ctx, KindTransferRejected, t, func(context.Context) ([]Message, error) {
		payload := n.payloads.Build(t)
		if t.RejectionReason != nil {
			payload["rejectionReason"] = *t.RejectionReason
		}
		return []Message{{Kind: KindTransferRejected, RecipientID: t.UserID, Payload: payload}}, nil
	})
}

// TransferFailed tells the sender why execution failed
func (n *TransferNotifier) TransferFailed(ctx context.Context, t models.Transfer) {
	n.dispatch(ctx, KindTransferFailed, t, func(context.Context) ([]Message, error) {
		payload := n.payloads.Build(t)
		if t.FailureReason != nil {
			payload["failureReason"] = *t.FailureReason
		}
		return []Message{{Kind: KindTransferFailed, RecipientID: t.UserID, Payload: payload}}, nil
	})
}

// Wait blocks until every in-flight dispatch has finished.
func (n *TransferNotifier) Wait() {
	n.wg.Wait()
}

func (n *TransferNotifier) receiverMessages(t models.Transfer, receiverID *uuid.UUID) []Message {
	if receiverID == nil || *receiverID == t.UserID {
		return nil
	}

	payload := n.payloads.Build(t)
	payload["isReceiver"] = true
	return []Message{{Kind: KindTransferCompleted, RecipientID: *receiverID, Payload: payload}}
}

func (n *TransferNotifier) dispatch(
	ctx context.Context,
	kind Kind,
	t models.Transfer,
	build func(ctx context.Context) ([]Message, error),
) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()

		msgs, err := build(ctx)
		if err != nil {
			n.logger.Error("failed to prepare notification",
				"kind", kind,
				"transfer_id", t.ID,
				"error", err,
			)
			return
		}

		for _, msg := range msgs {
			if err := n.publisher.Publish(ctx, msg); err != nil {
				n.logger.Error("failed to publish notification",
					"kind", msg.Kind,
					"transfer_id", t.ID,
					"user_id", msg.RecipientID,
					"error", err,
				)
				continue
			}
			n.logger.Debug("notification published",
				"kind", msg.Kind,
				"transfer_id", t.ID,
				"user_id", msg.RecipientID,
			)
		}
	}()
}

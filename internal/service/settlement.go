package service

import (
	"context"
	"errors"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/repository"
	"github.com/google/uuid"
)

// settleRequest selects between owner execution and admin approval.
// Exactly one of ownerID and adminID is set.
type settleRequest struct {
	ownerID *uuid.UUID
	adminID *uuid.UUID
	comment *string
}

type settleOutcome struct {
	transfer   *models.Transfer
	receiverID *uuid.UUID
	failed     bool
}

// Execute settles a PENDING transfer owned by the caller
func (s *TransferService) Execute(ctx context.Context, caller models.Identity, transferID uuid.UUID) (*models.Transfer, error) {
	return s.settle(ctx, transferID, settleRequest{ownerID: &caller.UserID})
}

// Approve settles any PENDING transfer on behalf of an administrator
func (s *TransferService) Approve(
	ctx context.Context,
	admin models.Identity,
	transferID uuid.UUID,
	comment *string,
) (*models.Transfer, error) {
	if comment != nil {
		if err := validateText("comment", *comment, false, CommentMaxLength); err != nil {
			return nil, invalidRequest(err)
		}
	}
	return s.settle(ctx, transferID, settleRequest{adminID: &admin.UserID, comment: comment})
}

// settle runs the authoritative check and ledger movement in one transaction.
// An insufficient balance commits the FAILED transition and is still reported
// to the caller as ErrCodeInsufficientFunds.
func (s *TransferService) settle(ctx context.Context, transferID uuid.UUID, req settleRequest) (*models.Transfer, error) {
	var outcome *settleOutcome
	err := s.runInTx(ctx, func(transfers repository.TransferRepository, accounts repository.AccountRepository) error {
		var err error
		outcome, err = s.performSettle(ctx, transfers, accounts, transferID, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	t := outcome.transfer
	if outcome.failed {
		s.logger.Warn("transfer failed at execution",
			"transfer_id", t.ID,
			"reference", t.Reference,
			"reason", models.FailureReasonInsufficientBalance,
		)
		s.notifier.TransferFailed(ctx, *t)
		return nil, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "insufficient balance to execute transfer",
			Err:     models.ErrInsufficientFunds,
		}
	}

	if req.adminID != nil {
		s.logger.Info("transfer approved and completed",
			"transfer_id", t.ID,
			"reference", t.Reference,
			"admin_id", *req.adminID,
		)
		s.notifier.TransferApproved(ctx, *t, outcome.receiverID)
	} else {
		s.logger.Info("transfer completed",
			"transfer_id", t.ID,
			"reference", t.Reference,
			"user_id", t.UserID,
		)
		s.notifier.TransferCompleted(ctx, *t, outcome.receiverID)
	}

	return t, nil
}

func (s *TransferService) performSettle(
	ctx context.Context,
	transfers repository.TransferRepository,
	accounts repository.AccountRepository,
	transferID uuid.UUID,
	req settleRequest,
) (*settleOutcome, error) {
	t, err := s.lockPending(ctx, transfers, transferID, req.ownerID)
	if err != nil {
		return nil, err
	}

	settlement, err := s.ledger.Settle(ctx, accounts, t)
	switch {
	case errors.Is(err, models.ErrInsufficientFunds):
		t.Fail(models.FailureReasonInsufficientBalance)
		if err := transfers.Update(ctx, t); err != nil {
			return nil, internalError("failed to record failed transfer", err)
		}
		return &settleOutcome{transfer: t, failed: true}, nil
	case errors.Is(err, models.ErrAccountNotTransactable):
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotTransactable,
			Message: "source account is not active",
			Err:     err,
		}
	case err != nil:
		return nil, internalError("failed to settle transfer", err)
	}

	now := s.now()
	if req.adminID != nil {
		t.Approve(*req.adminID, req.comment, now)
	}
	t.Complete(now)

	if err := transfers.Update(ctx, t); err != nil {
		return nil, internalError("failed to complete transfer", err)
	}

	outcome := &settleOutcome{transfer: t}
	if settlement.Target != nil {
		receiverID := settlement.Target.UserID
		outcome.receiverID = &receiverID
	}
	return outcome, nil
}

// Reject cancels a PENDING transfer without touching any balance
func (s *TransferService) Reject(
	ctx context.Context,
	admin models.Identity,
	transferID uuid.UUID,
	reason string,
) (*models.Transfer, error) {
	if err := validateText("reason", reason, true, RejectionReasonMaxLength); err != nil {
		return nil, invalidRequest(err)
	}

	var t *models.Transfer
	err := s.runInTx(ctx, func(transfers repository.TransferRepository, _ repository.AccountRepository) error {
		var err error
		t, err = s.performReject(ctx, transfers, admin.UserID, transferID, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transfer rejected",
		"transfer_id", t.ID,
		"reference", t.Reference,
		"admin_id", admin.UserID,
	)
	s.notifier.TransferRejected(ctx, *t)

	return t, nil
}

func (s *TransferService) performReject(
	ctx context.Context,
	transfers repository.TransferRepository,
	adminID, transferID uuid.UUID,
	reason string,
) (*models.Transfer, error) {
	t, err := s.lockPending(ctx, transfers, transferID, nil)
	if err != nil {
		return nil, err
	}

	t.Reject(adminID, reason, s.now())
	if err := transfers.Update(ctx, t); err != nil {
		return nil, internalError("failed to reject transfer", err)
	}
	return t, nil
}

// lockPending locks the transfer row and checks it is still PENDING. When
// ownerID is set, a transfer owned by someone else is reported as not found.
func (s *TransferService) lockPending(
	ctx context.Context,
	transfers repository.TransferRepository,
	transferID uuid.UUID,
	ownerID *uuid.UUID,
) (*models.Transfer, error) {
	t, err := transfers.FindByIDForUpdate(ctx, transferID)
	if err != nil {
		return nil, lookupError(err, ErrCodeTransferNotFound, "transfer")
	}
	if ownerID != nil && t.UserID != *ownerID {
		return nil, newError(ErrCodeTransferNotFound, "transfer not found")
	}
	if t.Status != models.TransferStatusPending {
		return nil, newError(ErrCodeInvalidTransferStatus, "transfer is not pending")
	}
	return t, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/benx421/bank-transfers/internal/db"
	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferSettings are the configurable limits of the transfer engine
type TransferSettings struct {
	Currency        string
	MaxAmount       decimal.Decimal
	ReasonMaxLength int
}

// TransferService drives the transfer state machine
type TransferService struct {
	db           *db.DB
	ledger       *Ledger
	notifier     Notifier
	newReference ReferenceGenerator
	now          func() time.Time
	logger       *slog.Logger
	settings     TransferSettings
}

// NewTransferService creates a new TransferService
func NewTransferService(
	database *db.DB,
	notifier Notifier,
	settings TransferSettings,
	logger *slog.Logger,
) *TransferService {
	return &TransferService{
		db:           database,
		ledger:       NewLedger(logger),
		notifier:     notifier,
		newReference: NewReference,
		now:          time.Now,
		logger:       logger,
		settings:     settings,
	}
}

// InitiateTransferRequest is the caller input for a new transfer
type InitiateTransferRequest struct {
	Amount        decimal.Decimal
	Reason        string
	ClientIP      string
	BeneficiaryID uuid.UUID
}

// Initiate validates the request, runs the optimistic limit check and stores a PENDING transfer
func (s *TransferService) Initiate(
	ctx context.Context,
	caller models.Identity,
	req InitiateTransferRequest,
) (*models.Transfer, error) {
	if err := ValidateAmount(req.Amount, s.settings.MaxAmount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}
	if err := validateText("reason", req.Reason, true, s.settings.ReasonMaxLength); err != nil {
		return nil, invalidRequest(err)
	}

	t, err := s.performInitiate(
		ctx,
		repository.NewUserRepository(s.db),
		repository.NewAccountRepository(s.db),
		repository.NewBeneficiaryRepository(s.db),
		repository.NewTransferRepository(s.db),
		caller.UserID,
		req,
	)
	if err != nil {
		return nil, err
	}

	s.logger.Info("transfer initiated",
		"transfer_id", t.ID,
		"reference", t.Reference,
		"user_id", caller.UserID,
	)
	s.notifier.TransferCreated(ctx, *t)

	return t, nil
}

func (s *TransferService) performInitiate(
	ctx context.Context,
	users repository.UserRepository,
	accounts repository.AccountRepository,
	beneficiaries repository.BeneficiaryRepository,
	transfers repository.TransferRepository,
	userID uuid.UUID,
	req InitiateTransferRequest,
) (*models.Transfer, error) {
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, ErrCodeUserNotFound, "user")
	}

	account, err := accounts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, newError(ErrCodeNoBankAccount, "user has no bank account")
		}
		return nil, internalError("failed to load bank account", err)
	}

	beneficiary, err := beneficiaries.FindActiveByIDAndUser(ctx, req.BeneficiaryID, userID)
	if err != nil {
		return nil, lookupError(err, ErrCodeBeneficiaryNotFound, "beneficiary")
	}

	t := &models.Transfer{
		ID:                       uuid.New(),
		FromAccountID:            account.ID,
		BeneficiaryID:            beneficiary.ID,
		UserID:                   userID,
		Amount:                   req.Amount,
		Fees:                     decimal.Zero,
		Currency:                 s.settings.Currency,
		Reason:                   strings.TrimSpace(req.Reason),
		Status:                   models.TransferStatusPending,
		BeneficiaryName:          beneficiary.Name,
		BeneficiaryAccountNumber: beneficiary.AccountNumber,
		SourceAccountNumber:      account.AccountNumber,
		SenderFirstName:          user.FirstName,
		SenderLastName:           user.LastName,
	}
	if req.ClientIP != "" {
		ip := req.ClientIP
		t.IPAddress = &ip
	}
	t.RecomputeTotal()

	if !CanTransfer(account, t.TotalAmount) {
		if account.Status != models.AccountStatusActive {
			return nil, newError(ErrCodeTransferLimitExceeded,
				fmt.Sprintf("source account is %s and cannot send transfers", strings.ToLower(string(account.Status))))
		}
		return nil, newError(ErrCodeTransferLimitExceeded, "transfer amount exceeds available balance")
	}

	for attempt := 1; attempt <= referenceRetries; attempt++ {
		ref, err := s.newReference()
		if err != nil {
			return nil, internalError("failed to generate reference", err)
		}
		t.Reference = ref

		err = transfers.Create(ctx, t)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, models.ErrDuplicateReference) {
			return nil, internalError("failed to create transfer", err)
		}
		s.logger.Warn("transfer reference collision, retrying", "reference", ref, "attempt", attempt)
	}

	return nil, &ServiceError{
		Code:    ErrCodeConflict,
		Message: "could not allocate a unique transfer reference",
		Err:     models.ErrDuplicateReference,
	}
}

// runInTx runs fn with repositories bound to one read-committed transaction
// and commits when fn succeeds.
func (s *TransferService) runInTx(
	ctx context.Context,
	fn func(transfers repository.TransferRepository, accounts repository.AccountRepository) error,
) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := fn(repository.NewTransferRepository(tx), repository.NewAccountRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return internalError("failed to commit transaction", err)
	}
	return nil
}

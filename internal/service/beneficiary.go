package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/benx421/bank-transfers/internal/db"
	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/repository"
	"github.com/google/uuid"
)

// BeneficiaryService manages the beneficiary registry
type BeneficiaryService struct {
	db     *db.DB
	logger *slog.Logger
}

// NewBeneficiaryService creates a new BeneficiaryService
func NewBeneficiaryService(database *db.DB, logger *slog.Logger) *BeneficiaryService {
	return &BeneficiaryService{db: database, logger: logger}
}

// Create saves a new active, verified beneficiary for the caller
func (s *BeneficiaryService) Create(
	ctx context.Context,
	caller models.Identity,
	name, accountNumber string,
) (*models.Beneficiary, error) {
	name = strings.TrimSpace(name)
	if err := validateText("name", name, true, BeneficiaryNameMaxLength); err != nil {
		return nil, invalidRequest(err)
	}
	if err := ValidateAccountNumber(accountNumber); err != nil {
		return nil, invalidRequest(err)
	}

	b, err := s.performCreate(ctx, repository.NewBeneficiaryRepository(s.db), caller.UserID, name, accountNumber)
	if err != nil {
		return nil, err
	}

	s.logger.Info("beneficiary created", "beneficiary_id", b.ID, "user_id", caller.UserID)
	return b, nil
}

func (s *BeneficiaryService) performCreate(
	ctx context.Context,
	beneficiaries repository.BeneficiaryRepository,
	userID uuid.UUID,
	name, accountNumber string,
) (*models.Beneficiary, error) {
	exists, err := beneficiaries.ExistsActive(ctx, userID, accountNumber)
	if err != nil {
		return nil, internalError("failed to check beneficiary", err)
	}
	if exists {
		return nil, newError(ErrCodeBeneficiaryExists, "beneficiary already exists for this account number")
	}

	b := &models.Beneficiary{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		AccountNumber: accountNumber,
		IsVerified:    true,
		IsActive:      true,
	}

	if err := beneficiaries.Create(ctx, b); err != nil {
		if errors.Is(err, models.ErrDuplicateBeneficiary) {
			return nil, &ServiceError{
				Code:    ErrCodeBeneficiaryExists,
				Message: "beneficiary already exists for this account number",
				Err:     err,
			}
		}
		return nil, internalError("failed to create beneficiary", err)
	}

	return b, nil
}

// List returns the caller's active beneficiaries ordered by name
func (s *BeneficiaryService) List(ctx context.Context, caller models.Identity) ([]models.Beneficiary, error) {
	list, err := repository.NewBeneficiaryRepository(s.db).ListActiveByUser(ctx, caller.UserID)
	if err != nil {
		return nil, internalError("failed to list beneficiaries", err)
	}
	return list, nil
}

// Get returns one active beneficiary owned by the caller
func (s *BeneficiaryService) Get(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Beneficiary, error) {
	b, err := repository.NewBeneficiaryRepository(s.db).FindActiveByIDAndUser(ctx, id, caller.UserID)
	if err != nil {
		return nil, lookupError(err, ErrCodeBeneficiaryNotFound, "beneficiary")
	}
	return b, nil
}

// Deactivate soft-deletes a beneficiary owned by the caller
func (s *BeneficiaryService) Deactivate(ctx context.Context, caller models.Identity, id uuid.UUID) error {
	if err := repository.NewBeneficiaryRepository(s.db).Deactivate(ctx, id, caller.UserID); err != nil {
		return lookupError(err, ErrCodeBeneficiaryNotFound, "beneficiary")
	}

	s.logger.Info("beneficiary deactivated", "beneficiary_id", id, "user_id", caller.UserID)
	return nil
}

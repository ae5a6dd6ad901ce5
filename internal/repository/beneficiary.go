package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/google/uuid"
)

const beneficiaryActiveKey = "beneficiaries_active_owner_account_key"

// BeneficiaryRepository defines the interface for beneficiary data access
type BeneficiaryRepository interface {
	Create(ctx context.Context, beneficiary *models.Beneficiary) error
	ExistsActive(ctx context.Context, userID uuid.UUID, accountNumber string) (bool, error)
	FindActiveByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.Beneficiary, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Beneficiary, error)
	Deactivate(ctx context.Context, id, userID uuid.UUID) error
}

type beneficiaryRepository struct {
	db DBTX
}

// NewBeneficiaryRepository creates a new BeneficiaryRepository
func NewBeneficiaryRepository(database DBTX) BeneficiaryRepository {
	return &beneficiaryRepository{db: database}
}

const beneficiaryColumns = `
	id, user_id, name, account_number, is_verified, is_active, created_at, updated_at`

func scanBeneficiary(row rowScanner) (*models.Beneficiary, error) {
	var b models.Beneficiary
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.AccountNumber,
		&b.IsVerified,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a beneficiary. A concurrent insert of the same active pair surfaces as ErrDuplicateBeneficiary.
func (r *beneficiaryRepository) Create(ctx context.Context, b *models.Beneficiary) error {
	query := `
		INSERT INTO beneficiaries (id, user_id, name, account_number, is_verified, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		b.ID,
		b.UserID,
		b.Name,
		b.AccountNumber,
		b.IsVerified,
		b.IsActive,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, beneficiaryActiveKey) {
			return models.ErrDuplicateBeneficiary
		}
		return fmt.Errorf("failed to create beneficiary: %w", err)
	}

	return nil
}

// ExistsActive reports whether the user already has an active beneficiary for accountNumber
func (r *beneficiaryRepository) ExistsActive(ctx context.Context, userID uuid.UUID, accountNumber string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM beneficiaries
			WHERE user_id = $1 AND account_number = $2 AND is_active
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, accountNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check beneficiary: %w", err)
	}
	return exists, nil
}

// FindActiveByIDAndUser returns an active beneficiary owned by userID
func (r *beneficiaryRepository) FindActiveByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.Beneficiary, error) {
	query := `SELECT` + beneficiaryColumns + `
		FROM beneficiaries
		WHERE id = $1 AND user_id = $2 AND is_active
	`

	b, err := scanBeneficiary(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("beneficiary not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find beneficiary: %w", err)
	}
	return b, nil
}

// ListActiveByUser returns the user's active beneficiaries ordered by name
func (r *beneficiaryRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Beneficiary, error) {
	query := `SELECT` + beneficiaryColumns + `
		FROM beneficiaries
		WHERE user_id = $1 AND is_active
		ORDER BY name ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}
	defer rows.Close()

	beneficiaries := make([]models.Beneficiary, 0)
	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary: %w", err)
		}
		beneficiaries = append(beneficiaries, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate beneficiaries: %w", err)
	}

	return beneficiaries, nil
}

// Deactivate soft-deletes a beneficiary owned by userID
func (r *beneficiaryRepository) Deactivate(ctx context.Context, id, userID uuid.UUID) error {
	query := `
		UPDATE beneficiaries
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND is_active
	`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate beneficiary: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("beneficiary not found: %w", models.ErrNotFound)
	}

	return nil
}

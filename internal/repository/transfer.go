package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/google/uuid"
)

const transferReferenceKey = "transfers_reference_key"

// TransferRepository defines the interface for transfer data access
type TransferRepository interface {
	Create(ctx context.Context, transfer *models.Transfer) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transfer, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Transfer, error)
	Update(ctx context.Context, transfer *models.Transfer) error
	List(ctx context.Context, filter models.TransferFilter, page models.PageRequest) (models.Page[models.Transfer], error)
	ListByStatus(ctx context.Context, status models.TransferStatus) ([]models.Transfer, error)
}

type transferRepository struct {
	db DBTX
}

// NewTransferRepository creates a new TransferRepository
func NewTransferRepository(database DBTX) TransferRepository {
	return &transferRepository{db: database}
}

const transferSelect = `
	SELECT t.id, t.reference, t.from_account_id, t.beneficiary_id, t.user_id,
	       t.amount, t.fees, t.total_amount, t.currency, t.reason, t.status,
	       t.execution_date, t.completed_at, t.failure_reason, t.admin_comment,
	       t.rejection_reason, t.approved_by, t.approved_at, t.rejected_by, t.rejected_at,
	       t.ip_address, t.created_at, t.updated_at,
	       b.name, b.account_number, a.account_number, u.first_name, u.last_name`

const transferFrom = `
	FROM transfers t
	JOIN beneficiaries b ON b.id = t.beneficiary_id
	JOIN accounts a ON a.id = t.from_account_id
	JOIN users u ON u.id = t.user_id`

func scanTransfer(row rowScanner) (*models.Transfer, error) {
	var t models.Transfer
	if err := row.Scan(
		&t.ID,
		&t.Reference,
		&t.FromAccountID,
		&t.BeneficiaryID,
		&t.UserID,
		&t.Amount,
		&t.Fees,
		&t.TotalAmount,
		&t.Currency,
		&t.Reason,
		&t.Status,
		&t.ExecutionDate,
		&t.CompletedAt,
		&t.FailureReason,
		&t.AdminComment,
		&t.RejectionReason,
		&t.ApprovedBy,
		&t.ApprovedAt,
		&t.RejectedBy,
		&t.RejectedAt,
		&t.IPAddress,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.BeneficiaryName,
		&t.BeneficiaryAccountNumber,
		&t.SourceAccountNumber,
		&t.SenderFirstName,
		&t.SenderLastName,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a transfer. The total is recomputed first; a reference collision returns ErrDuplicateReference.
func (r *transferRepository) Create(ctx context.Context, t *models.Transfer) error {
	t.RecomputeTotal()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	query := `
		INSERT INTO transfers (
			id, reference, from_account_id, beneficiary_id, user_id,
			amount, fees, total_amount, currency, reason, status, ip_address
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		t.ID,
		t.Reference,
		t.FromAccountID,
		t.BeneficiaryID,
		t.UserID,
		t.Amount,
		t.Fees,
		t.TotalAmount,
		t.Currency,
		t.Reason,
		t.Status,
		t.IPAddress,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, transferReferenceKey) {
			return models.ErrDuplicateReference
		}
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	return nil
}

func (r *transferRepository) findOne(ctx context.Context, id uuid.UUID, suffix string) (*models.Transfer, error) {
	query := transferSelect + transferFrom + ` WHERE t.id = $1` + suffix

	t, err := scanTransfer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transfer not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transfer: %w", err)
	}
	return t, nil
}

// FindByID retrieves a transfer with its beneficiary, source account and sender details
func (r *transferRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transfer, error) {
	return r.findOne(ctx, id, "")
}

// FindByIDForUpdate is FindByID holding a row lock on the transfer only
func (r *transferRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Transfer, error) {
	return r.findOne(ctx, id, " FOR UPDATE OF t")
}

// Update persists the mutable lifecycle fields of a transfer
func (r *transferRepository) Update(ctx context.Context, t *models.Transfer) error {
	t.RecomputeTotal()

	query := `
		UPDATE transfers
		SET status = $2,
		    fees = $3,
		    total_amount = $4,
		    execution_date = $5,
		    completed_at = $6,
		    failure_reason = $7,
		    admin_comment = $8,
		    rejection_reason = $9,
		    approved_by = $10,
		    approved_at = $11,
		    rejected_by = $12,
		    rejected_at = $13,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		t.ID,
		t.Status,
		t.Fees,
		t.TotalAmount,
		t.ExecutionDate,
		t.CompletedAt,
		t.FailureReason,
		t.AdminComment,
		t.RejectionReason,
		t.ApprovedBy,
		t.ApprovedAt,
		t.RejectedBy,
		t.RejectedAt,
	).Scan(&t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("transfer not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}

	return nil
}

// List returns one page of transfers matching every non-nil filter field
func (r *transferRepository) List(
	ctx context.Context,
	filter models.TransferFilter,
	page models.PageRequest,
) (models.Page[models.Transfer], error) {
	page = page.Normalize()
	where := And(TransferPredicates(filter)...)
	result := models.Page[models.Transfer]{Page: page.Page, Size: page.Size, Items: []models.Transfer{}}

	countQuery := `SELECT COUNT(*)` + transferFrom + ` WHERE ` + where.Bind(0)
	if err := r.db.QueryRowContext(ctx, countQuery, where.Args...).Scan(&result.TotalElements); err != nil {
		return result, fmt.Errorf("failed to count transfers: %w", err)
	}
	if result.TotalElements == 0 {
		return result, nil
	}

	n := len(where.Args)
	listQuery := transferSelect + transferFrom +
		` WHERE ` + where.Bind(0) + ` ` + orderBy(page) +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, n+1, n+2)
	args := append(append([]any{}, where.Args...), page.Size, page.Offset())

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return result, fmt.Errorf("failed to list transfers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return result, fmt.Errorf("failed to scan transfer: %w", err)
		}
		result.Items = append(result.Items, *t)
	}
	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("failed to iterate transfers: %w", err)
	}

	return result, nil
}

// ListByStatus returns every transfer in status, oldest first
func (r *transferRepository) ListByStatus(ctx context.Context, status models.TransferStatus) ([]models.Transfer, error) {
	query := transferSelect + transferFrom + ` WHERE t.status = $1 ORDER BY t.created_at ASC, t.id ASC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers by status: %w", err)
	}
	defer rows.Close()

	transfers := make([]models.Transfer, 0)
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfers: %w", err)
	}

	return transfers, nil
}

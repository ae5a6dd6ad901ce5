package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Account, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	UpdateBalances(ctx context.Context, account *models.Account) error
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db DBTX
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(database DBTX) AccountRepository {
	return &accountRepository{db: database}
}

const accountColumns = `
	id, user_id, account_number, balance, blocked_amount, available_balance,
	currency, status, created_at, updated_at`

func scanAccount(row rowScanner) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.AccountNumber,
		&account.Balance,
		&account.BlockedAmount,
		&account.AvailableBalance,
		&account.Currency,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) findOne(ctx context.Context, op, where string, arg any) (*models.Account, error) {
	query := `SELECT` + accountColumns + ` FROM accounts WHERE ` + where

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by %s: %w", op, err)
	}
	return account, nil
}

// FindByID retrieves an account by its UUID
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return r.findOne(ctx, "id", "id = $1", id)
}

// FindByUserID retrieves the single account owned by a user
func (r *accountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	return r.findOne(ctx, "user id", "user_id = $1", userID)
}

// FindByIDForUpdate retrieves an account and locks its row until the surrounding transaction ends
func (r *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return r.findOne(ctx, "id", "id = $1 FOR UPDATE", id)
}

// FindByAccountNumber resolves an account number inside this ledger without locking it
func (r *accountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	return r.findOne(ctx, "account number", "account_number = $1", accountNumber)
}

// UpdateBalances persists balance, blocked amount and available balance.
// The available balance is recomputed before writing.
func (r *accountRepository) UpdateBalances(ctx context.Context, account *models.Account) error {
	account.RecomputeAvailable()

	query := `
		UPDATE accounts
		SET balance = $2,
		    blocked_amount = $3,
		    available_balance = $4,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		account.ID,
		account.Balance,
		account.BlockedAmount,
		account.AvailableBalance,
	).Scan(&account.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("account not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update account balances: %w", err)
	}

	return nil
}

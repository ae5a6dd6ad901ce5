//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/benx421/bank-transfers/internal/db"
	"github.com/benx421/bank-transfers/internal/db/dbtest"
	"github.com/benx421/bank-transfers/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()
	return dbtest.Start(t)
}

func seedUser(t *testing.T, database *db.DB, first, last string, role models.Role) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := database.ExecContext(context.Background(),
		`INSERT INTO users (id, first_name, last_name, email, role) VALUES ($1, $2, $3, $4, $5)`,
		id, first, last, id.String()+"@bank.test", role)
	require.NoError(t, err)
	return id
}

func seedAccount(t *testing.T, database *db.DB, userID uuid.UUID, number, balance string) *models.Account {
	t.Helper()

	b := decimal.RequireFromString(balance)
	account := &models.Account{
		ID:            uuid.New(),
		UserID:        userID,
		AccountNumber: number,
		Balance:       b,
		Currency:      "TND",
		Status:        models.AccountStatusActive,
	}
	account.RecomputeAvailable()

	_, err := database.ExecContext(context.Background(), `
		INSERT INTO accounts (id, user_id, account_number, balance, blocked_amount, available_balance, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID, account.UserID, account.AccountNumber, account.Balance,
		account.BlockedAmount, account.AvailableBalance, account.Currency, account.Status)
	require.NoError(t, err)
	return account
}

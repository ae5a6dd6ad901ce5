//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/benx421/bank-transfers/internal/db"
	"github.com/benx421/bank-transfers/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transferFixture struct {
	owner       uuid.UUID
	account     *models.Account
	beneficiary *models.Beneficiary
}

func newTransferFixture(t *testing.T, database *db.DB) transferFixture {
	t.Helper()

	owner := seedUser(t, database, "Nour", "Gharbi", models.RoleClient)
	account := seedAccount(t, database, owner, "20000000000000000001", "5000.000")
	b := &models.Beneficiary{UserID: owner, Name: "Mehdi Ayari", AccountNumber: "30000000000000000001", IsActive: true, IsVerified: true}
	require.NoError(t, NewBeneficiaryRepository(database).Create(context.Background(), b))

	return transferFixture{owner: owner, account: account, beneficiary: b}
}

func (f transferFixture) newTransfer(ref, amount string) *models.Transfer {
	return &models.Transfer{
		Reference:     ref,
		FromAccountID: f.account.ID,
		BeneficiaryID: f.beneficiary.ID,
		UserID:        f.owner,
		Amount:        decimal.RequireFromString(amount),
		Fees:          decimal.Zero,
		Currency:      "TND",
		Reason:        "rent",
		Status:        models.TransferStatusPending,
	}
}

func TestTransferRepository_CreateAndFind(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTransferRepository(database)
	ctx := context.Background()
	f := newTransferFixture(t, database)

	tr := f.newTransfer("STB17000000000001234", "300")
	require.NoError(t, repo.Create(ctx, tr))
	assert.Equal(t, "300.000", tr.TotalAmount.StringFixed(3))

	dup := f.newTransfer(tr.Reference, "10")
	assert.ErrorIs(t, repo.Create(ctx, dup), models.ErrDuplicateReference)

	found, err := repo.FindByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, tr.Reference, found.Reference)
	assert.Equal(t, "Mehdi Ayari", found.BeneficiaryName)
	assert.Equal(t, f.account.AccountNumber, found.SourceAccountNumber)
	assert.Equal(t, "Nour Gharbi", found.SenderName())
	assert.Nil(t, found.CompletedAt)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTransferRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTransferRepository(database)
	ctx := context.Background()
	f := newTransferFixture(t, database)

	admin := seedUser(t, database, "Root", "Admin", models.RoleAdmin)
	tr := f.newTransfer("STB17000000000005678", "25.5")
	require.NoError(t, repo.Create(ctx, tr))

	tr.Reject(admin, "fraud suspected", time.Now())
	require.NoError(t, repo.Update(ctx, tr))

	found, err := repo.FindByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusCancelled, found.Status)
	require.NotNil(t, found.RejectedBy)
	assert.Equal(t, admin, *found.RejectedBy)
	assert.Equal(t, "fraud suspected", *found.RejectionReason)
}

func TestTransferRepository_ListFilters(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTransferRepository(database)
	ctx := context.Background()
	f := newTransferFixture(t, database)

	amounts := []string{"50", "100", "150", "200", "250", "100"}
	statuses := []models.TransferStatus{
		models.TransferStatusCompleted,
		models.TransferStatusCompleted,
		models.TransferStatusPending,
		models.TransferStatusCompleted,
		models.TransferStatusFailed,
		models.TransferStatusCompleted,
	}
	for i, amount := range amounts {
		tr := f.newTransfer(fmt.Sprintf("STB1700000000000%04d", i), amount)
		require.NoError(t, repo.Create(ctx, tr))
		tr.Status = statuses[i]
		require.NoError(t, repo.Update(ctx, tr))
	}

	status := models.TransferStatusCompleted
	minAmount := decimal.RequireFromString("100")

	statusFirst := And(append(
		TransferPredicates(models.TransferFilter{Status: &status}),
		TransferPredicates(models.TransferFilter{MinAmount: &minAmount})...)...)
	amountFirst := And(append(
		TransferPredicates(models.TransferFilter{MinAmount: &minAmount}),
		TransferPredicates(models.TransferFilter{Status: &status})...)...)

	ids := func(p Predicate) []uuid.UUID {
		rows, err := database.QueryContext(ctx,
			`SELECT t.id`+transferFrom+` WHERE `+p.Bind(0)+` ORDER BY t.id`, p.Args...)
		require.NoError(t, err)
		defer rows.Close()
		var out []uuid.UUID
		for rows.Next() {
			var id uuid.UUID
			require.NoError(t, rows.Scan(&id))
			out = append(out, id)
		}
		return out
	}

	a, b := ids(statusFirst), ids(amountFirst)
	assert.Len(t, a, 3)
	assert.Equal(t, a, b)

	page, err := repo.List(ctx, models.TransferFilter{Status: &status, MinAmount: &minAmount},
		models.PageRequest{Size: 2, SortBy: "amount", Direction: models.SortAsc})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages())
	require.Len(t, page.Items, 2)

	next, err := repo.List(ctx, models.TransferFilter{Status: &status, MinAmount: &minAmount},
		models.PageRequest{Page: 1, Size: 2, SortBy: "amount", Direction: models.SortAsc})
	require.NoError(t, err)
	require.Len(t, next.Items, 1)

	seen := map[uuid.UUID]bool{}
	for _, tr := range append(page.Items, next.Items...) {
		assert.False(t, seen[tr.ID], "transfer %s returned on two pages", tr.ID)
		seen[tr.ID] = true
	}
	assert.Equal(t, "200.000", next.Items[0].Amount.StringFixed(3))

	search := "mehdi"
	all, err := repo.List(ctx, models.TransferFilter{Search: &search}, models.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 6, all.TotalElements)

	today := time.Now()
	byDate, err := repo.List(ctx, models.TransferFilter{StartDate: &today, EndDate: &today}, models.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 6, byDate.TotalElements)

	pending, err := repo.ListByStatus(ctx, models.TransferStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

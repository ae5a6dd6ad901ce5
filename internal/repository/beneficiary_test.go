//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeneficiaryRepository_Lifecycle(t *testing.T) {
	database := setupTestDB(t)
	repo := NewBeneficiaryRepository(database)
	ctx := context.Background()

	owner := seedUser(t, database, "Leila", "Haddad", models.RoleClient)

	zed := &models.Beneficiary{UserID: owner, Name: "Zed", AccountNumber: "00000000000000000001", IsActive: true, IsVerified: true}
	amal := &models.Beneficiary{UserID: owner, Name: "Amal", AccountNumber: "00000000000000000002", IsActive: true, IsVerified: true}
	require.NoError(t, repo.Create(ctx, zed))
	require.NoError(t, repo.Create(ctx, amal))

	dup := &models.Beneficiary{UserID: owner, Name: "Zed again", AccountNumber: zed.AccountNumber, IsActive: true}
	assert.ErrorIs(t, repo.Create(ctx, dup), models.ErrDuplicateBeneficiary)

	exists, err := repo.ExistsActive(ctx, owner, zed.AccountNumber)
	require.NoError(t, err)
	assert.True(t, exists)

	list, err := repo.ListActiveByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Amal", list[0].Name)
	assert.Equal(t, "Zed", list[1].Name)

	_, err = repo.FindActiveByIDAndUser(ctx, zed.ID, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, repo.Deactivate(ctx, zed.ID, owner))
	assert.ErrorIs(t, repo.Deactivate(ctx, zed.ID, owner), models.ErrNotFound)

	_, err = repo.FindActiveByIDAndUser(ctx, zed.ID, owner)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// The account number is free again once the old entry is inactive.
	again := &models.Beneficiary{UserID: owner, Name: "Zed", AccountNumber: zed.AccountNumber, IsActive: true}
	require.NoError(t, repo.Create(ctx, again))

	var rows int
	require.NoError(t, database.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM beneficiaries WHERE user_id = $1`, owner).Scan(&rows))
	assert.Equal(t, 3, rows)
}

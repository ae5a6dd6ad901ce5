package service

import (
	"context"
	"fmt"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/repository"
	"github.com/google/uuid"
)

// Get returns any transfer by id
func (s *TransferService) Get(ctx context.Context, transferID uuid.UUID) (*models.Transfer, error) {
	return s.findTransfer(ctx, repository.NewTransferRepository(s.db), transferID, nil)
}

// GetForUser returns a transfer only if the caller initiated it
func (s *TransferService) GetForUser(ctx context.Context, caller models.Identity, transferID uuid.UUID) (*models.Transfer, error) {
	return s.findTransfer(ctx, repository.NewTransferRepository(s.db), transferID, &caller.UserID)
}

func (s *TransferService) findTransfer(
	ctx context.Context,
	transfers repository.TransferRepository,
	transferID uuid.UUID,
	ownerID *uuid.UUID,
) (*models.Transfer, error) {
	t, err := transfers.FindByID(ctx, transferID)
	if err != nil {
		return nil, lookupError(err, ErrCodeTransferNotFound, "transfer")
	}
	if ownerID != nil && t.UserID != *ownerID {
		return nil, newError(ErrCodeTransferNotFound, "transfer not found")
	}
	return t, nil
}

// ListForUser pages through the caller's own transfers. Free-text search is
// an admin-only filter and is ignored here.
func (s *TransferService) ListForUser(
	ctx context.Context,
	caller models.Identity,
	filter models.TransferFilter,
	page models.PageRequest,
) (models.Page[models.Transfer], error) {
	userID := caller.UserID
	filter.UserID = &userID
	filter.Search = nil
	return s.listTransfers(ctx, repository.NewTransferRepository(s.db), filter, page)
}

// ListAll pages through every transfer
func (s *TransferService) ListAll(
	ctx context.Context,
	filter models.TransferFilter,
	page models.PageRequest,
) (models.Page[models.Transfer], error) {
	return s.listTransfers(ctx, repository.NewTransferRepository(s.db), filter, page)
}

func (s *TransferService) listTransfers(
	ctx context.Context,
	transfers repository.TransferRepository,
	filter models.TransferFilter,
	page models.PageRequest,
) (models.Page[models.Transfer], error) {
	page = page.Normalize()
	if !repository.IsSortableTransferField(page.SortBy) {
		return models.Page[models.Transfer]{}, newError(ErrCodeInvalidRequest, fmt.Sprintf("cannot sort by %q", page.SortBy))
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return models.Page[models.Transfer]{}, newError(ErrCodeInvalidRequest, fmt.Sprintf("unknown status %q", *filter.Status))
	}

	result, err := transfers.List(ctx, filter, page)
	if err != nil {
		return models.Page[models.Transfer]{}, internalError("failed to list transfers", err)
	}
	return result, nil
}

// ListPending returns every PENDING transfer, oldest first
func (s *TransferService) ListPending(ctx context.Context) ([]models.Transfer, error) {
	list, err := repository.NewTransferRepository(s.db).ListByStatus(ctx, models.TransferStatusPending)
	if err != nil {
		return nil, internalError("failed to list pending transfers", err)
	}
	return list, nil
}

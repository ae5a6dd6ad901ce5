package service

import (
	"context"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// TransferCommander initiates and executes transfers on behalf of their owner
type TransferCommander interface {
	Initiate(ctx context.Context, caller models.Identity, req InitiateTransferRequest) (*models.Transfer, error)
	Execute(ctx context.Context, caller models.Identity, transferID uuid.UUID) (*models.Transfer, error)
}

// TransferAdministrator approves or rejects pending transfers
type TransferAdministrator interface {
	Approve(ctx context.Context, admin models.Identity, transferID uuid.UUID, comment *string) (*models.Transfer, error)
	Reject(ctx context.Context, admin models.Identity, transferID uuid.UUID, reason string) (*models.Transfer, error)
}

// TransferQuerier provides read-only transfer views
type TransferQuerier interface {
	Get(ctx context.Context, transferID uuid.UUID) (*models.Transfer, error)
	GetForUser(ctx context.Context, caller models.Identity, transferID uuid.UUID) (*models.Transfer, error)
	ListForUser(ctx context.Context, caller models.Identity, filter models.TransferFilter, page models.PageRequest) (models.Page[models.Transfer], error)
	ListAll(ctx context.Context, filter models.TransferFilter, page models.PageRequest) (models.Page[models.Transfer], error)
	ListPending(ctx context.Context) ([]models.Transfer, error)
}

// BeneficiaryManager manages a caller's saved payees
type BeneficiaryManager interface {
	Create(ctx context.Context, caller models.Identity, name, accountNumber string) (*models.Beneficiary, error)
	List(ctx context.Context, caller models.Identity) ([]models.Beneficiary, error)
	Get(ctx context.Context, caller models.Identity, beneficiaryID uuid.UUID) (*models.Beneficiary, error)
	Deactivate(ctx context.Context, caller models.Identity, beneficiaryID uuid.UUID) error
}

// Notifier is told about transfer state changes after they commit.
// Implementations must not block and never report failure back.
type Notifier interface {
	TransferCreated(ctx context.Context, t models.Transfer)
	TransferApproved(ctx context.Context, t models.Transfer, receiverID *uuid.UUID)
	TransferCompleted(ctx context.Context, t models.Transfer, receiverID *uuid.UUID)
	TransferRejected(ctx context.Context, t models.Transfer)
	TransferFailed(ctx context.Context, t models.Transfer)
}

// Ensure concrete types implement interfaces
var (
	_ TransferCommander     = (*TransferService)(nil)
	_ TransferAdministrator = (*TransferService)(nil)
	_ TransferQuerier       = (*TransferService)(nil)
	_ BeneficiaryManager    = (*BeneficiaryService)(nil)
)

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferStatus represents the lifecycle state of a transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "PENDING"
	TransferStatusCompleted TransferStatus = "COMPLETED"
	TransferStatusFailed    TransferStatus = "FAILED"
	TransferStatusCancelled TransferStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is allowed out of s.
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusCompleted || s == TransferStatusFailed || s == TransferStatusCancelled
}

// Valid reports whether s is a known status.
func (s TransferStatus) Valid() bool {
	return s == TransferStatusPending || s.IsTerminal()
}

// FailureReasonInsufficientBalance is recorded on transfers that fail the execution-time balance check.
const FailureReasonInsufficientBalance = "Insufficient balance"

// Transfer represents a money movement from a customer account to a saved beneficiary
type Transfer struct {
	Audit
	ExecutionDate   *time.Time      `db:"execution_date"`
	CompletedAt     *time.Time      `db:"completed_at"`
	ApprovedAt      *time.Time      `db:"approved_at"`
	RejectedAt      *time.Time      `db:"rejected_at"`
	ApprovedBy      *uuid.UUID      `db:"approved_by"`
	RejectedBy      *uuid.UUID      `db:"rejected_by"`
	FailureReason   *string         `db:"failure_reason"`
	AdminComment    *string         `db:"admin_comment"`
	RejectionReason *string         `db:"rejection_reason"`
	IPAddress       *string         `db:"ip_address"`
	Reference       string          `db:"reference"`
	Currency        string          `db:"currency"`
	Reason          string          `db:"reason"`
	Status          TransferStatus  `db:"status"`
	Amount          decimal.Decimal `db:"amount"`
	Fees            decimal.Decimal `db:"fees"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	ID              uuid.UUID       `db:"id"`
	FromAccountID   uuid.UUID       `db:"from_account_id"`
	BeneficiaryID   uuid.UUID       `db:"beneficiary_id"`
	UserID          uuid.UUID       `db:"user_id"`

	// Read-side fields populated by joined queries, never written back.
	BeneficiaryName          string `db:"beneficiary_name"`
	BeneficiaryAccountNumber string `db:"beneficiary_account_number"`
	SourceAccountNumber      string `db:"source_account_number"`
	SenderFirstName          string `db:"sender_first_name"`
	SenderLastName           string `db:"sender_last_name"`
}

// RecomputeTotal sets TotalAmount to Amount plus Fees at money scale.
func (t *Transfer) RecomputeTotal() {
	t.Amount = t.Amount.Round(MoneyScale)
	t.Fees = t.Fees.Round(MoneyScale)
	t.TotalAmount = t.Amount.Add(t.Fees)
}

// SenderName returns the initiator display name.
func (t *Transfer) SenderName() string {
	u := User{FirstName: t.SenderFirstName, LastName: t.SenderLastName}
	return u.FullName()
}

// Complete moves the transfer to COMPLETED at now.
func (t *Transfer) Complete(now time.Time) {
	t.Status = TransferStatusCompleted
	t.CompletedAt = &now
	t.ExecutionDate = &now
}

// Fail moves the transfer to FAILED with reason.
func (t *Transfer) Fail(reason string) {
	t.Status = TransferStatusFailed
	t.FailureReason = &reason
}

// Approve records the approving admin. The caller is expected to Complete afterwards.
func (t *Transfer) Approve(adminID uuid.UUID, comment *string, now time.Time) {
	t.ApprovedBy = &adminID
	t.ApprovedAt = &now
	t.AdminComment = comment
}

// Reject moves the transfer to CANCELLED on behalf of adminID.
func (t *Transfer) Reject(adminID uuid.UUID, reason string, now time.Time) {
	t.Status = TransferStatusCancelled
	t.RejectedBy = &adminID
	t.RejectedAt = &now
	t.RejectionReason = &reason
}

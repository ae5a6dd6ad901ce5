package handlers

import (
	"time"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type initiateTransferRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	BeneficiaryID uuid.UUID       `json:"beneficiary_id"`
}

type executeTransferRequest struct {
	TransferID uuid.UUID `json:"transfer_id"`
}

type approveTransferRequest struct {
	Comment *string `json:"comment"`
}

type rejectTransferRequest struct {
	Reason string `json:"reason"`
}

type createBeneficiaryRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type transferResponse struct {
	ExecutionDate            *time.Time `json:"execution_date,omitempty"`
	CompletedAt              *time.Time `json:"completed_at,omitempty"`
	ApprovedAt               *time.Time `json:"approved_at,omitempty"`
	RejectedAt               *time.Time `json:"rejected_at,omitempty"`
	ApprovedBy               *uuid.UUID `json:"approved_by,omitempty"`
	RejectedBy               *uuid.UUID `json:"rejected_by,omitempty"`
	FailureReason            *string    `json:"failure_reason,omitempty"`
	AdminComment             *string    `json:"admin_comment,omitempty"`
	RejectionReason          *string    `json:"rejection_reason,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
	Reference                string     `json:"reference"`
	Amount                   string     `json:"amount"`
	Fees                     string     `json:"fees"`
	TotalAmount              string     `json:"total_amount"`
	Currency                 string     `json:"currency"`
	Reason                   string     `json:"reason"`
	Status                   string     `json:"status"`
	BeneficiaryName          string     `json:"beneficiary_name,omitempty"`
	BeneficiaryAccountNumber string     `json:"beneficiary_account_number,omitempty"`
	SourceAccountNumber      string     `json:"source_account_number,omitempty"`
	SenderName               string     `json:"sender_name,omitempty"`
	ID                       uuid.UUID  `json:"id"`
	BeneficiaryID            uuid.UUID  `json:"beneficiary_id"`
}

func newTransferResponse(t *models.Transfer) transferResponse {
	return transferResponse{
		ID:                       t.ID,
		Reference:                t.Reference,
		Amount:                   t.Amount.StringFixed(models.MoneyScale),
		Fees:                     t.Fees.StringFixed(models.MoneyScale),
		TotalAmount:              t.TotalAmount.StringFixed(models.MoneyScale),
		Currency:                 t.Currency,
		Reason:                   t.Reason,
		Status:                   string(t.Status),
		BeneficiaryID:            t.BeneficiaryID,
		BeneficiaryName:          t.BeneficiaryName,
		BeneficiaryAccountNumber: t.BeneficiaryAccountNumber,
		SourceAccountNumber:      t.SourceAccountNumber,
		SenderName:               t.SenderName(),
		ExecutionDate:            t.ExecutionDate,
		CompletedAt:              t.CompletedAt,
		FailureReason:            t.FailureReason,
		AdminComment:             t.AdminComment,
		RejectionReason:          t.RejectionReason,
		ApprovedBy:               t.ApprovedBy,
		ApprovedAt:               t.ApprovedAt,
		RejectedBy:               t.RejectedBy,
		RejectedAt:               t.RejectedAt,
		CreatedAt:                t.CreatedAt,
		UpdatedAt:                t.UpdatedAt,
	}
}

func newTransferList(list []models.Transfer) []transferResponse {
	out := make([]transferResponse, 0, len(list))
	for i := range list {
		out = append(out, newTransferResponse(&list[i]))
	}
	return out
}

type transferPageResponse struct {
	Content       []transferResponse `json:"content"`
	TotalElements int64              `json:"total_elements"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	TotalPages    int                `json:"total_pages"`
}

func newTransferPage(p models.Page[models.Transfer]) transferPageResponse {
	return transferPageResponse{
		Content:       newTransferList(p.Items),
		TotalElements: p.TotalElements,
		Page:          p.Page,
		Size:          p.Size,
		TotalPages:    p.TotalPages(),
	}
}

type beneficiaryResponse struct {
	CreatedAt     time.Time `json:"created_at"`
	Name          string    `json:"name"`
	AccountNumber string    `json:"account_number"`
	IsVerified    bool      `json:"is_verified"`
	ID            uuid.UUID `json:"id"`
}

func newBeneficiaryResponse(b *models.Beneficiary) beneficiaryResponse {
	return beneficiaryResponse{
		ID:            b.ID,
		Name:          b.Name,
		AccountNumber: b.AccountNumber,
		IsVerified:    b.IsVerified,
		CreatedAt:     b.CreatedAt,
	}
}

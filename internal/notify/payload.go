package notify

import (
	"strings"
	"time"

	"github.com/benx421/bank-transfers/internal/models"
)

// PayloadBuilder renders the notification payload for a transfer. The frontend
// URL is injected at construction and used for deep links.
type PayloadBuilder struct {
	frontendURL string
}

// NewPayloadBuilder creates a PayloadBuilder linking to frontendURL
func NewPayloadBuilder(frontendURL string) *PayloadBuilder {
	return &PayloadBuilder{frontendURL: strings.TrimSuffix(frontendURL, "/")}
}

// Link returns the frontend page of a transfer.
func (b *PayloadBuilder) Link(t models.Transfer) string {
	return b.frontendURL + "/transfers/" + t.ID.String()
}

// Build returns the common payload fields for t.
func (b *PayloadBuilder) Build(t models.Transfer) map[string]any {
	return map[string]any{
		"transferId":      t.ID.String(),
		"reference":       t.Reference,
		"amount":          t.Amount.StringFixed(models.MoneyScale),
		"currency":        t.Currency,
		"beneficiaryName": t.BeneficiaryName,
		"beneficiaryRib":  t.BeneficiaryAccountNumber,
		"reason":          t.Reason,
		"status":          string(t.Status),
		"senderName":      t.SenderName(),
		"createdAt":       t.CreatedAt.UTC().Format(time.RFC3339),
		"link":            b.Link(t),
	}
}

package service

import (
	"github.com/benx421/bank-transfers/internal/models"
	"github.com/shopspring/decimal"
)

// CanTransfer reports whether account may send amount: it must be ACTIVE and
// its available balance must cover amount. It is evaluated optimistically at
// initiation and again under the account row lock at execution.
func CanTransfer(account *models.Account, amount decimal.Decimal) bool {
	if account == nil || account.Status != models.AccountStatusActive {
		return false
	}
	return account.AvailableBalance.GreaterThanOrEqual(amount)
}

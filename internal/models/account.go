package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for every monetary column.
const MoneyScale = 3

// AccountStatus represents the lifecycle state of a bank account
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusClosed    AccountStatus = "CLOSED"
)

// Account represents a customer bank account held in this ledger
type Account struct {
	Audit
	AccountNumber    string          `db:"account_number"`
	Currency         string          `db:"currency"`
	Status           AccountStatus   `db:"status"`
	Balance          decimal.Decimal `db:"balance"`
	BlockedAmount    decimal.Decimal `db:"blocked_amount"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	ID               uuid.UUID       `db:"id"`
	UserID           uuid.UUID       `db:"user_id"`
}

// RecomputeAvailable derives the available balance from balance and blocked amount.
func (a *Account) RecomputeAvailable() {
	a.Balance = a.Balance.Round(MoneyScale)
	a.BlockedAmount = a.BlockedAmount.Round(MoneyScale)
	a.AvailableBalance = a.Balance.Sub(a.BlockedAmount)
}

// Debit removes amount from the account. The account is left untouched on error.
func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if a.Status != AccountStatusActive {
		return ErrAccountNotTransactable
	}
	if a.AvailableBalance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	a.RecomputeAvailable()
	return nil
}

// Credit adds amount to the account unless it is closed.
func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if a.Status == AccountStatusClosed {
		return ErrAccountClosed
	}

	a.Balance = a.Balance.Add(amount)
	a.RecomputeAvailable()
	return nil
}

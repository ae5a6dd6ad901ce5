package models

import "errors"

// Domain errors that can be returned by repositories and the ledger
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateBeneficiary indicates an active beneficiary with the same owner and account number exists
	ErrDuplicateBeneficiary = errors.New("duplicate beneficiary")

	// ErrDuplicateReference indicates a transfer reference collided with an existing one
	ErrDuplicateReference = errors.New("duplicate transfer reference")

	// ErrInsufficientFunds indicates the available balance does not cover a debit
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotTransactable indicates the account is not ACTIVE and cannot be debited
	ErrAccountNotTransactable = errors.New("account is not transactable")

	// ErrAccountClosed indicates the account is CLOSED and cannot be credited
	ErrAccountClosed = errors.New("account is closed")

	// ErrInvalidAmount indicates a non-positive ledger amount
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

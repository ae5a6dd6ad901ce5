package service

import (
	"errors"
	"fmt"

	"github.com/benx421/bank-transfers/internal/models"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Error codes surfaced to API callers
const (
	ErrCodeNotFound               = "not_found"
	ErrCodeTransferNotFound       = "transfer_not_found"
	ErrCodeBeneficiaryNotFound    = "beneficiary_not_found"
	ErrCodeUserNotFound           = "user_not_found"
	ErrCodeNoBankAccount          = "no_bank_account"
	ErrCodeInvalidTransferStatus  = "invalid_transfer_status"
	ErrCodeInsufficientFunds      = "insufficient_funds"
	ErrCodeAccountNotTransactable = "account_not_transactable"
	ErrCodeTransferLimitExceeded  = "transfer_limit_exceeded"
	ErrCodeBeneficiaryExists      = "beneficiary_already_exists"
	ErrCodeConflict               = "conflict"
	ErrCodeInvalidAmount          = "invalid_amount"
	ErrCodeInvalidRequest         = "invalid_request"
	ErrCodeInternalError          = "internal_error"
)

func newError(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func internalError(message string, err error) *ServiceError {
	return &ServiceError{Code: ErrCodeInternalError, Message: message, Err: err}
}

// lookupError maps a repository lookup failure to notFoundCode when the row is
// missing and to an internal error otherwise.
func lookupError(err error, notFoundCode, entity string) *ServiceError {
	if errors.Is(err, models.ErrNotFound) {
		return newError(notFoundCode, entity+" not found")
	}
	return internalError("failed to load "+entity, err)
}

// CodeOf returns the code carried by err, "" for a nil error, or
// ErrCodeInternalError when err is not a *ServiceError.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return ErrCodeInternalError
}

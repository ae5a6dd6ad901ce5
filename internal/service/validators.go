package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/shopspring/decimal"
)

// Field limits for transfer and beneficiary input
const (
	AccountNumberLength      = 20
	BeneficiaryNameMaxLength = 100
	CommentMaxLength         = 1000
	RejectionReasonMaxLength = 500
)

// ValidateAmount checks that amount is positive, within max and has at most three fractional digits
func ValidateAmount(amount, max decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	if !amount.Equal(amount.Round(models.MoneyScale)) {
		return fmt.Errorf("amount must have at most %d decimal places", models.MoneyScale)
	}
	if amount.GreaterThan(max) {
		return fmt.Errorf("amount must not exceed %s", max.StringFixed(models.MoneyScale))
	}
	return nil
}

// ValidateAccountNumber checks that number is exactly 20 digits
func ValidateAccountNumber(number string) error {
	if len(number) != AccountNumberLength {
		return fmt.Errorf("account number must be %d digits", AccountNumberLength)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return fmt.Errorf("account number must contain only digits")
		}
	}
	return nil
}

// validateText checks a required or optional free-text field against a rune limit.
func validateText(field, value string, required bool, max int) error {
	trimmed := strings.TrimSpace(value)
	if required && trimmed == "" {
		return fmt.Errorf("%s is required", field)
	}
	if utf8.RuneCountInString(trimmed) > max {
		return fmt.Errorf("%s must be at most %d characters", field, max)
	}
	return nil
}

func invalidRequest(err error) *ServiceError {
	return &ServiceError{Code: ErrCodeInvalidRequest, Message: err.Error()}
}

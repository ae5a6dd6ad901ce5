package models

import "github.com/google/uuid"

// Beneficiary is a saved payee owned by an account holder.
// Rows are never hard-deleted; deactivation flips IsActive.
type Beneficiary struct {
	Audit
	Name          string    `db:"name"`
	AccountNumber string    `db:"account_number"`
	IsVerified    bool      `db:"is_verified"`
	IsActive      bool      `db:"is_active"`
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
}

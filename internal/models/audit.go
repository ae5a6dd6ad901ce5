package models

import "time"

// Audit carries the row timestamps maintained by the persistence layer.
// Repositories set both on insert and bump UpdatedAt on every update.
type Audit struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Touch stamps the audit fields for a write happening at now.
func (a *Audit) Touch(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}

package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/benx421/bank-transfers/internal/models"
)

// Predicate is one SQL condition with '?' placeholders and its arguments.
type Predicate struct {
	SQL  string
	Args []any
}

// And joins predicates conjunctively. Empty input yields TRUE so an absent
// filter never excludes rows.
func And(preds ...Predicate) Predicate {
	if len(preds) == 0 {
		return Predicate{SQL: "TRUE"}
	}

	parts := make([]string, 0, len(preds))
	var args []any
	for _, p := range preds {
		parts = append(parts, "("+p.SQL+")")
		args = append(args, p.Args...)
	}
	return Predicate{SQL: strings.Join(parts, " AND "), Args: args}
}

// Bind rewrites '?' placeholders as $n starting after offset existing arguments.
func (p Predicate) Bind(offset int) string {
	var b strings.Builder
	n := offset
	for _, r := range p.SQL {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TransferPredicates translates each non-nil field of f into a predicate.
// Nil fields contribute nothing.
func TransferPredicates(f models.TransferFilter) []Predicate {
	var preds []Predicate

	if f.UserID != nil {
		preds = append(preds, Predicate{SQL: "t.user_id = ?", Args: []any{*f.UserID}})
	}
	if f.Status != nil {
		preds = append(preds, Predicate{SQL: "t.status = ?", Args: []any{string(*f.Status)}})
	}
	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		pattern := likePattern(*f.Search)
		preds = append(preds, Predicate{
			SQL: "t.reference ILIKE ? OR b.name ILIKE ? OR b.account_number ILIKE ? " +
				"OR a.account_number ILIKE ? OR u.first_name ILIKE ? OR u.last_name ILIKE ?",
			Args: []any{pattern, pattern, pattern, pattern, pattern, pattern},
		})
	}
	if f.BeneficiaryName != nil && strings.TrimSpace(*f.BeneficiaryName) != "" {
		preds = append(preds, Predicate{SQL: "b.name ILIKE ?", Args: []any{likePattern(*f.BeneficiaryName)}})
	}
	if f.MinAmount != nil {
		preds = append(preds, Predicate{SQL: "t.amount >= ?", Args: []any{*f.MinAmount}})
	}
	if f.MaxAmount != nil {
		preds = append(preds, Predicate{SQL: "t.amount <= ?", Args: []any{*f.MaxAmount}})
	}
	if f.StartDate != nil {
		preds = append(preds, Predicate{SQL: "t.created_at >= ?", Args: []any{startOfDay(*f.StartDate)}})
	}
	if f.EndDate != nil {
		preds = append(preds, Predicate{SQL: "t.created_at < ?", Args: []any{startOfDay(*f.EndDate).AddDate(0, 0, 1)}})
	}

	return preds
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
}

var transferSortColumns = map[string]string{
	"createdAt":     "t.created_at",
	"amount":        "t.amount",
	"totalAmount":   "t.total_amount",
	"status":        "t.status",
	"reference":     "t.reference",
	"executionDate": "t.execution_date",
}

// IsSortableTransferField reports whether field can be used to order transfer listings.
func IsSortableTransferField(field string) bool {
	_, ok := transferSortColumns[field]
	return ok
}

// orderBy renders the ORDER BY clause with id as tie-breaker so pages never overlap.
func orderBy(page models.PageRequest) string {
	column, ok := transferSortColumns[page.SortBy]
	if !ok {
		column = transferSortColumns[models.DefaultSortBy]
	}
	dir := "DESC"
	if page.Direction == models.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, t.id %s", column, dir, dir)
}

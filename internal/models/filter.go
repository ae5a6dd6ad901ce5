package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SortDirection is the ordering of a paginated listing
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Pagination defaults applied when a request leaves fields empty
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "createdAt"
)

// TransferFilter holds independently optional predicates over transfers.
// A nil field places no constraint on the result.
type TransferFilter struct {
	UserID          *uuid.UUID
	Status          *TransferStatus
	Search          *string
	BeneficiaryName *string
	MinAmount       *decimal.Decimal
	MaxAmount       *decimal.Decimal
	StartDate       *time.Time
	EndDate         *time.Time
}

// PageRequest selects one page of a sorted listing
type PageRequest struct {
	SortBy    string
	Direction SortDirection
	Page      int
	Size      int
}

// Normalize fills defaults and clamps out-of-range values.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.Direction != SortAsc {
		p.Direction = SortDesc
	}
	return p
}

// Offset returns the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a listing along with totals
type Page[T any] struct {
	Items         []T
	TotalElements int64
	Page          int
	Size          int
}

// TotalPages returns the number of pages of Size covering TotalElements.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

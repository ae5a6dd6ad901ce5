package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/benx421/bank-transfers/internal/middleware"
	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const maxRequestBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // Best effort response writing
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func badRequest(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, err.Error())
}

// statusForCode maps service error codes to HTTP statuses
func statusForCode(code string) int {
	switch code {
	case service.ErrCodeNotFound,
		service.ErrCodeTransferNotFound,
		service.ErrCodeBeneficiaryNotFound,
		service.ErrCodeUserNotFound:
		return http.StatusNotFound
	case service.ErrCodeInvalidAmount,
		service.ErrCodeInvalidRequest,
		service.ErrCodeTransferLimitExceeded:
		return http.StatusBadRequest
	case service.ErrCodeInsufficientFunds:
		return http.StatusPaymentRequired
	case service.ErrCodeInvalidTransferStatus,
		service.ErrCodeAccountNotTransactable,
		service.ErrCodeNoBankAccount,
		service.ErrCodeBeneficiaryExists,
		service.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil || statusForCode(svcErr.Code) == http.StatusInternalServerError {
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, service.ErrCodeInternalError, "internal server error")
		return
	}

	writeError(w, statusForCode(svcErr.Code), svcErr.Code, svcErr.Message)
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// caller returns the authenticated identity or writes 401.
func caller(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, middleware.ErrCodeUnauthenticated, "missing bearer token")
	}
	return id, ok
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

// clientIP returns the caller address as rewritten by chi's RealIP.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

type listParams struct {
	Page            *int
	Size            *int
	Sort            *string
	SortDirection   *string
	Status          *string
	BeneficiaryName *string
	Search          *string
	MinAmount       *string
	MaxAmount       *string
	StartDate       *openapi_types.Date
	EndDate         *openapi_types.Date
}

func bindListParams(r *http.Request) (listParams, error) {
	var p listParams
	query := r.URL.Query()

	bindings := []struct {
		dest any
		name string
	}{
		{&p.Page, "page"},
		{&p.Size, "size"},
		{&p.Sort, "sort"},
		{&p.SortDirection, "sort_direction"},
		{&p.Status, "status"},
		{&p.BeneficiaryName, "beneficiary_name"},
		{&p.Search, "search"},
		{&p.MinAmount, "min_amount"},
		{&p.MaxAmount, "max_amount"},
		{&p.StartDate, "start_date"},
		{&p.EndDate, "end_date"},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			return listParams{}, fmt.Errorf("invalid %s: %w", b.name, err)
		}
	}
	return p, nil
}

func (p listParams) filter() (models.TransferFilter, error) {
	var f models.TransferFilter

	if p.Status != nil {
		status := models.TransferStatus(strings.ToUpper(*p.Status))
		f.Status = &status
	}
	f.BeneficiaryName = nonBlank(p.BeneficiaryName)
	f.Search = nonBlank(p.Search)

	var err error
	if f.MinAmount, err = parseAmount("min_amount", p.MinAmount); err != nil {
		return f, err
	}
	if f.MaxAmount, err = parseAmount("max_amount", p.MaxAmount); err != nil {
		return f, err
	}

	if p.StartDate != nil {
		start := p.StartDate.Time
		f.StartDate = &start
	}
	if p.EndDate != nil {
		end := p.EndDate.Time
		f.EndDate = &end
	}
	return f, nil
}

func (p listParams) page() models.PageRequest {
	var page models.PageRequest
	if p.Page != nil {
		page.Page = *p.Page
	}
	if p.Size != nil {
		page.Size = *p.Size
	}
	if p.Sort != nil {
		page.SortBy = *p.Sort
	}
	if p.SortDirection != nil {
		page.Direction = models.SortDirection(strings.ToUpper(*p.SortDirection))
	}
	return page
}

func parseAmount(name string, raw *string) (*decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &d, nil
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const beneficiaryAccount = "10000000000000000002"

func sampleBeneficiary(owner uuid.UUID) *models.Beneficiary {
	b := &models.Beneficiary{
		ID:            uuid.New(),
		UserID:        owner,
		Name:          "Sami Ben Ali",
		AccountNumber: beneficiaryAccount,
		IsVerified:    true,
		IsActive:      true,
	}
	b.CreatedAt = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return b
}

func TestCreateBeneficiary(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"duplicate", &service.ServiceError{Code: service.ErrCodeBeneficiaryExists, Message: "beneficiary already exists"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			caller := client()
			var created *models.Beneficiary
			if tt.err == nil {
				created = sampleBeneficiary(caller.UserID)
			}

			s.beneficiaries.On("Create", mock.Anything, caller, "Sami Ben Ali", beneficiaryAccount).Return(created, tt.err)

			rec := s.do(t, &caller, http.MethodPost, "/api/v1/beneficiaries",
				`{"name":"Sami Ben Ali","account_number":"`+beneficiaryAccount+`"}`)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.err == nil {
				body := decodeBody[beneficiaryResponse](t, rec)
				assert.Equal(t, created.ID, body.ID)
				assert.True(t, body.IsVerified)
			}
		})
	}
}

func TestCreateBeneficiary_InvalidAccountNumber(t *testing.T) {
	s := newTestServer(t)
	caller := client()

	rec := s.do(t, &caller, http.MethodPost, "/api/v1/beneficiaries", `{"name":"Sami","account_number":"12AB"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	s.beneficiaries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListBeneficiaries(t *testing.T) {
	s := newTestServer(t)
	caller := client()

	s.beneficiaries.On("List", mock.Anything, caller).Return([]models.Beneficiary{*sampleBeneficiary(caller.UserID)}, nil)

	rec := s.do(t, &caller, http.MethodGet, "/api/v1/beneficiaries", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]beneficiaryResponse](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, beneficiaryAccount, body[0].AccountNumber)
}

func TestGetBeneficiary_NotFound(t *testing.T) {
	s := newTestServer(t)
	caller := client()
	id := uuid.New()

	s.beneficiaries.On("Get", mock.Anything, caller, id).
		Return(nil, &service.ServiceError{Code: service.ErrCodeBeneficiaryNotFound, Message: "beneficiary not found"})

	rec := s.do(t, &caller, http.MethodGet, "/api/v1/beneficiaries/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrCodeBeneficiaryNotFound, decodeBody[errorResponse](t, rec).Error)
}

func TestDeactivateBeneficiary(t *testing.T) {
	s := newTestServer(t)
	caller := client()
	id := uuid.New()

	s.beneficiaries.On("Deactivate", mock.Anything, caller, id).Return(nil)

	rec := s.do(t, &caller, http.MethodDelete, "/api/v1/beneficiaries/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

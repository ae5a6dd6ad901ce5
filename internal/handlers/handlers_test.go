package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benx421/bank-transfers/internal/api"
	"github.com/benx421/bank-transfers/internal/middleware"
	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/service/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServer struct {
	handler       http.Handler
	transfers     *mocks.MockTransferCommander
	admin         *mocks.MockTransferAdministrator
	queries       *mocks.MockTransferQuerier
	beneficiaries *mocks.MockBeneficiaryManager
	health        *mocks.MockHealthChecker
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		transfers:     mocks.NewMockTransferCommander(t),
		admin:         mocks.NewMockTransferAdministrator(t),
		queries:       mocks.NewMockTransferQuerier(t),
		beneficiaries: mocks.NewMockBeneficiaryManager(t),
		health:        mocks.NewMockHealthChecker(t),
	}

	validate, err := api.RequestValidator(testLogger())
	require.NoError(t, err)

	h := NewHandler(s.transfers, s.admin, s.queries, s.beneficiaries, s.health, testLogger())
	s.handler = routes(h, middleware.NewTokenVerifier(testSecret, ""), validate, nil, testLogger())
	return s
}

func tokenFor(t *testing.T, identity models.Identity) string {
	t.Helper()

	claims := middleware.Claims{
		Roles: identity.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func client() models.Identity {
	return models.Identity{UserID: uuid.New(), Roles: []models.Role{models.RoleClient}}
}

func admin() models.Identity {
	return models.Identity{UserID: uuid.New(), Roles: []models.Role{models.RoleAdmin}}
}

func (s *testServer) do(t *testing.T, identity *models.Identity, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if identity != nil {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, *identity))
	}
	req.Header.Set("X-Real-IP", "203.0.113.7")

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func sampleTransfer(owner uuid.UUID, status models.TransferStatus) *models.Transfer {
	t := &models.Transfer{
		ID:                       uuid.New(),
		UserID:                   owner,
		BeneficiaryID:            uuid.New(),
		Reference:                "STB17172320000001234",
		Amount:                   decimal.RequireFromString("300"),
		Currency:                 "TND",
		Reason:                   "rent",
		Status:                   status,
		BeneficiaryName:          "Sami Ben Ali",
		BeneficiaryAccountNumber: "10000000000000000002",
		SourceAccountNumber:      "10000000000000000001",
		SenderFirstName:          "Amira",
		SenderLastName:           "Trabelsi",
	}
	t.CreatedAt = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	t.UpdatedAt = t.CreatedAt
	t.RecomputeTotal()
	return t
}

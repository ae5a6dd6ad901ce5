// Package handlers implements HTTP handlers for the bank API.
package handlers

import (
	"log/slog"

	"github.com/benx421/bank-transfers/internal/service"
)

// Handler serves every endpoint of the API
type Handler struct {
	transfers     service.TransferCommander
	admin         service.TransferAdministrator
	queries       service.TransferQuerier
	beneficiaries service.BeneficiaryManager
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	transfers service.TransferCommander,
	admin service.TransferAdministrator,
	queries service.TransferQuerier,
	beneficiaries service.BeneficiaryManager,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		transfers:     transfers,
		admin:         admin,
		queries:       queries,
		beneficiaries: beneficiaries,
		healthChecker: healthChecker,
		logger:        logger,
	}
}

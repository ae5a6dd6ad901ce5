package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/bank-transfers/internal/api"
	"github.com/benx421/bank-transfers/internal/config"
	"github.com/benx421/bank-transfers/internal/db"
	"github.com/benx421/bank-transfers/internal/middleware"
	"github.com/benx421/bank-transfers/internal/models"
	"github.com/benx421/bank-transfers/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures the HTTP router with all routes and
// middleware. A nil idempotency store disables Idempotency-Key replays.
func NewRouter(
	database *db.DB,
	idempotency middleware.IdempotencyStore,
	notifier service.Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) (http.Handler, error) {
	transferService := service.NewTransferService(database, notifier, service.TransferSettings{
		Currency:        cfg.App.TransferCurrency,
		MaxAmount:       cfg.App.TransferMaxAmount,
		ReasonMaxLength: cfg.App.TransferReasonMaxLength,
	}, logger)
	beneficiaryService := service.NewBeneficiaryService(database, logger)

	handler := NewHandler(transferService, transferService, transferService, beneficiaryService, database, logger)

	validate, err := api.RequestValidator(logger)
	if err != nil {
		return nil, err
	}
	verifier := middleware.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	return routes(handler, verifier, validate, idempotency, logger), nil
}

func routes(
	h *Handler,
	verifier *middleware.TokenVerifier,
	validate func(http.Handler) http.Handler,
	idempotency middleware.IdempotencyStore,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	api.RegisterDocsRoutes(r)
	r.Get("/health", h.GetHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(verifier, logger))
		r.Use(validate)
		if idempotency != nil {
			r.Use(middleware.Idempotency(idempotency, logger))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleClient, models.RoleAdmin))

			r.Post("/transfers/initiate", h.InitiateTransfer)
			r.Post("/transfers/validate", h.ExecuteTransfer)
			r.Get("/transfers", h.ListMyTransfers)
			r.Get("/transfers/{transferId}", h.GetMyTransfer)

			r.Get("/beneficiaries", h.ListBeneficiaries)
			r.Post("/beneficiaries", h.CreateBeneficiary)
			r.Get("/beneficiaries/{beneficiaryId}", h.GetBeneficiary)
			r.Delete("/beneficiaries/{beneficiaryId}", h.DeactivateBeneficiary)
		})

		r.Route("/admin/transfers", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))

			r.Get("/", h.ListTransfers)
			r.Get("/pending", h.ListPendingTransfers)
			r.Get("/{transferId}", h.GetTransfer)
			r.Post("/{transferId}/approve", h.ApproveTransfer)
			r.Post("/{transferId}/reject", h.RejectTransfer)
		})
	})

	return r
}

package handlers

import (
	"net/http"

	"github.com/benx421/bank-transfers/internal/service"
)

// InitiateTransfer handles POST /api/v1/transfers/initiate
func (h *Handler) InitiateTransfer(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	var body initiateTransferRequest
	if err := decodeJSON(w, r, &body); err != nil {
		badRequest(w, err)
		return
	}

	t, err := h.transfers.Initiate(r.Context(), identity, service.InitiateTransferRequest{
		BeneficiaryID: body.BeneficiaryID,
		Amount:        body.Amount,
		Reason:        body.Reason,
		ClientIP:      clientIP(r),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newTransferResponse(t))
}

// ExecuteTransfer handles POST /api/v1/transfers/validate
func (h *Handler) ExecuteTransfer(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	var body executeTransferRequest
	if err := decodeJSON(w, r, &body); err != nil {
		badRequest(w, err)
		return
	}

	t, err := h.transfers.Execute(r.Context(), identity, body.TransferID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newTransferResponse(t))
}

// ListMyTransfers handles GET /api/v1/transfers
func (h *Handler) ListMyTransfers(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	params, err := bindListParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	filter, err := params.filter()
	if err != nil {
		badRequest(w, err)
		return
	}

	page, err := h.queries.ListForUser(r.Context(), identity, filter, params.page())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newTransferPage(page))
}

// GetMyTransfer handles GET /api/v1/transfers/{transferId}
func (h *Handler) GetMyTransfer(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "transferId")
	if err != nil {
		badRequest(w, err)
		return
	}

	t, err := h.queries.GetForUser(r.Context(), identity, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newTransferResponse(t))
}

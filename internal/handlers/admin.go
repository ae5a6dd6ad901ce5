package handlers

import (
	"errors"
	"io"
	"net/http"
)

// ListTransfers handles GET /api/v1/admin/transfers
func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
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

	page, err := h.queries.ListAll(r.Context(), filter, params.page())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newTransferPage(page))
}

// ListPendingTransfers handles GET /api/v1/admin/transfers/pending
func (h *Handler) ListPendingTransfers(w http.ResponseWriter, r *http.Request) {
	list, err := h.queries.ListPending(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newTransferList(list))
}

// GetTransfer handles GET /api/v1/admin/transfers/{transferId}
func (h *Handler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "transferId")
	if err != nil {
		badRequest(w, err)
		return
	}

	t, err := h.queries.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newTransferResponse(t))
}

// ApproveTransfer handles POST /api/v1/admin/transfers/{transferId}/approve.
// The body is optional.
func (h *Handler) ApproveTransfer(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "transferId")
	if err != nil {
		badRequest(w, err)
		return
	}

	var body approveTransferRequest
	if err := decodeJSON(w, r, &body); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, err)
		return
	}

	t, err := h.admin.Approve(r.Context(), identity, id, body.Comment)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newTransferResponse(t))
}

// RejectTransfer handles POST /api/v1/admin/transfers/{transferId}/reject
func (h *Handler) RejectTransfer(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "transferId")
	if err != nil {
		badRequest(w, err)
		return
	}

	var body rejectTransferRequest
	if err := decodeJSON(w, r, &body); err != nil {
		badRequest(w, err)
		return
	}

	t, err := h.admin.Reject(r.Context(), identity, id, body.Reason)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newTransferResponse(t))
}

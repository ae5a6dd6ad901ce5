package handlers

import (
	"net/http"
)

// CreateBeneficiary handles POST /api/v1/beneficiaries
func (h *Handler) CreateBeneficiary(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	var body createBeneficiaryRequest
	if err := decodeJSON(w, r, &body); err != nil {
		badRequest(w, err)
		return
	}

	b, err := h.beneficiaries.Create(r.Context(), identity, body.Name, body.AccountNumber)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newBeneficiaryResponse(b))
}

// ListBeneficiaries handles GET /api/v1/beneficiaries
func (h *Handler) ListBeneficiaries(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	list, err := h.beneficiaries.List(r.Context(), identity)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	out := make([]beneficiaryResponse, 0, len(list))
	for i := range list {
		out = append(out, newBeneficiaryResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetBeneficiary handles GET /api/v1/beneficiaries/{beneficiaryId}
func (h *Handler) GetBeneficiary(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "beneficiaryId")
	if err != nil {
		badRequest(w, err)
		return
	}

	b, err := h.beneficiaries.Get(r.Context(), identity, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newBeneficiaryResponse(b))
}

// DeactivateBeneficiary handles DELETE /api/v1/beneficiaries/{beneficiaryId}
func (h *Handler) DeactivateBeneficiary(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "beneficiaryId")
	if err != nil {
		badRequest(w, err)
		return
	}

	if err := h.beneficiaries.Deactivate(r.Context(), identity, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

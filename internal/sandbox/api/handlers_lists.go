package api

import (
	"net/http"

	"github.com/bagelpay/bagelpay-go/bagelpay"
)

// ListTransactions handles GET /api/transactions/list.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	pageNum, pageSize, ok := pageParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "pageNum and pageSize must be positive integers", codeInvalidRequest)
		return
	}
	total, items, err := h.store.ListTransactions(r.Context(), pageNum, pageSize)
	if err != nil {
		h.logger.Error("list transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, bagelpay.Page[bagelpay.Transaction]{Total: total, Items: items})
}

// ListCustomers handles GET /api/customers/list.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	pageNum, pageSize, ok := pageParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "pageNum and pageSize must be positive integers", codeInvalidRequest)
		return
	}
	total, items, err := h.store.ListCustomers(r.Context(), pageNum, pageSize)
	if err != nil {
		h.logger.Error("list customers failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, bagelpay.Page[bagelpay.Customer]{Total: total, Items: items})
}

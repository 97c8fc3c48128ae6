package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bagelpay/bagelpay-go/bagelpay"
	"github.com/bagelpay/bagelpay-go/internal/sandbox/store"
)

// GetSubscription handles GET /api/subscriptions/{id}.
func (h *Handler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sub, err := h.store.GetSubscription(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no such subscription: "+id, codeNotFound)
		return
	}
	if err != nil {
		h.logger.Error("get subscription failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// ListSubscriptions handles GET /api/subscriptions/list.
func (h *Handler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	pageNum, pageSize, ok := pageParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "pageNum and pageSize must be positive integers", codeInvalidRequest)
		return
	}
	total, items, err := h.store.ListSubscriptions(r.Context(), pageNum, pageSize)
	if err != nil {
		h.logger.Error("list subscriptions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, bagelpay.Page[bagelpay.Subscription]{Total: total, Items: items})
}

// CancelSubscription handles POST /api/subscriptions/cancel/{id}. The
// subscription stays in its current status until the billing period ends;
// only cancel_at is set.
func (h *Handler) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()

	sub, err := h.store.GetSubscription(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no such subscription: "+id, codeNotFound)
		return
	}
	if err != nil {
		h.logger.Error("get subscription failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}

	now := h.now().UTC().Truncate(time.Second)
	cancelAt := now
	switch {
	case sub.BillingPeriodEnd != nil && sub.BillingPeriodEnd.After(now):
		cancelAt = *sub.BillingPeriodEnd
	case sub.TrialEnd != nil && sub.TrialEnd.After(now):
		cancelAt = *sub.TrialEnd
	}

	if err := h.store.MarkSubscriptionCanceled(ctx, id, cancelAt, now); err != nil {
		h.logger.Error("cancel subscription failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}

	sub, err = h.store.GetSubscription(ctx, id)
	if err != nil {
		h.logger.Error("get subscription failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

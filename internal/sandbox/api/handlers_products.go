package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bagelpay/bagelpay-go/bagelpay"
	"github.com/bagelpay/bagelpay-go/internal/sandbox/store"
)

// CreateProduct handles POST /api/products/create.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req bagelpay.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeInvalidRequest)
		return
	}
	if msg := validateProductFields(req.Name, req.Price, req.Currency, req.BillingType, req.RecurringInterval, req.TrialDays); msg != "" {
		writeError(w, http.StatusBadRequest, msg, codeInvalidRequest)
		return
	}

	now := h.now().UTC().Truncate(time.Second)
	id := store.NewID("prod")
	product := bagelpay.Product{
		ProductID:         id,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Currency:          req.Currency,
		BillingType:       req.BillingType,
		TaxInclusive:      req.TaxInclusive,
		TaxCategory:       req.TaxCategory,
		RecurringInterval: req.RecurringInterval,
		TrialDays:         req.TrialDays,
		ProductURL:        fmt.Sprintf("http://%s/buy/%s", r.Host, id),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := h.store.InsertProduct(r.Context(), product); err != nil {
		h.logger.Error("insert product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetProduct handles GET /api/products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := h.store.GetProduct(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no such product: "+id, codeNotFound)
		return
	}
	if err != nil {
		h.logger.Error("get product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// ListProducts handles GET /api/products/list.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	pageNum, pageSize, ok := pageParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "pageNum and pageSize must be positive integers", codeInvalidRequest)
		return
	}
	total, items, err := h.store.ListProducts(r.Context(), pageNum, pageSize)
	if err != nil {
		h.logger.Error("list products failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, bagelpay.Page[bagelpay.Product]{Total: total, Items: items})
}

// UpdateProduct handles POST /api/products/update.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req bagelpay.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeInvalidRequest)
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required", codeInvalidRequest)
		return
	}
	if msg := validateProductFields(req.Name, req.Price, req.Currency, req.BillingType, req.RecurringInterval, req.TrialDays); msg != "" {
		writeError(w, http.StatusBadRequest, msg, codeInvalidRequest)
		return
	}

	existing, err := h.store.GetProduct(r.Context(), req.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no such product: "+req.ProductID, codeNotFound)
		return
	}
	if err != nil {
		h.logger.Error("get product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}

	updated := *existing
	updated.Name = req.Name
	updated.Description = req.Description
	updated.Price = req.Price
	updated.Currency = req.Currency
	updated.BillingType = req.BillingType
	updated.TaxInclusive = req.TaxInclusive
	updated.TaxCategory = req.TaxCategory
	updated.RecurringInterval = req.RecurringInterval
	updated.TrialDays = req.TrialDays
	updated.UpdatedAt = h.now().UTC().Truncate(time.Second)

	if err := h.store.UpdateProduct(r.Context(), updated); err != nil {
		h.logger.Error("update product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ArchiveProduct handles POST /api/products/archive/{id}.
func (h *Handler) ArchiveProduct(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true)
}

// UnarchiveProduct handles POST /api/products/unarchive/{id}.
func (h *Handler) UnarchiveProduct(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false)
}

func (h *Handler) setArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	id := chi.URLParam(r, "id")
	err := h.store.SetProductArchived(r.Context(), id, archived, h.now().UTC().Truncate(time.Second))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no such product: "+id, codeNotFound)
		return
	}
	if err != nil {
		h.logger.Error("archive product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		h.logger.Error("get product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func validateProductFields(name string, price float64, currency string, billingType bagelpay.BillingType, recurringInterval string, trialDays int) string {
	if name == "" {
		return "name is required"
	}
	if price <= 0 {
		return "price must be positive"
	}
	if currency == "" {
		return "currency is required"
	}
	switch billingType {
	case bagelpay.BillingSinglePayment, bagelpay.BillingSubscription:
	default:
		return fmt.Sprintf("unknown billing_type %q", billingType)
	}
	if billingType == bagelpay.BillingSubscription && recurringInterval == "" {
		return "recurring_interval is required for subscription products"
	}
	if trialDays < 0 {
		return "trial_days must not be negative"
	}
	return ""
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/mail"
	"strconv"
	"time"

	"github.com/bagelpay/bagelpay-go/bagelpay"
	"github.com/bagelpay/bagelpay-go/internal/sandbox/store"
)

const checkoutTTL = 30 * time.Minute

// CreateCheckout handles POST /api/payments/checkouts. The request_id acts as
// an idempotency token: a repeated token returns the original session instead
// of opening a second one.
func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req bagelpay.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeInvalidRequest)
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required", codeInvalidRequest)
		return
	}
	if req.RequestID == "" {
		writeError(w, http.StatusBadRequest, "request_id is required", codeInvalidRequest)
		return
	}

	units := 1
	if req.Units != "" {
		n, err := strconv.Atoi(req.Units)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("units must be a positive integer, got %q", req.Units), codeInvalidRequest)
			return
		}
		units = n
	}
	if req.Customer != nil {
		if _, err := mail.ParseAddress(req.Customer.Email); err != nil {
			writeError(w, http.StatusBadRequest, "customer email is not a valid address", codeInvalidRequest)
			return
		}
	}

	ctx := r.Context()

	// Idempotent replay of an already-seen token.
	if existing, err := h.store.GetPaymentByRequestID(ctx, req.RequestID); err == nil {
		writeJSON(w, http.StatusOK, paymentToResponse(existing))
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.logger.Error("lookup payment failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}

	product, err := h.store.GetProduct(ctx, req.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no such product: "+req.ProductID, codeNotFound)
		return
	}
	if err != nil {
		h.logger.Error("get product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}
	if product.IsArchive {
		writeError(w, http.StatusBadRequest, "product is archived", codeInvalidRequest)
		return
	}

	now := h.now().UTC().Truncate(time.Second)
	paymentID := store.NewID("pay")
	amount := int64(math.Round(product.Price*100)) * int64(units)

	email, name := "", ""
	if req.Customer != nil {
		email, name = req.Customer.Email, req.Customer.Name
	}

	payment := store.Payment{
		PaymentID:     paymentID,
		RequestID:     req.RequestID,
		ProductID:     product.ProductID,
		Status:        "pending",
		CheckoutURL:   fmt.Sprintf("http://%s/checkout/%s", r.Host, paymentID),
		Units:         units,
		CustomerEmail: email,
		SuccessURL:    req.SuccessURL,
		Metadata:      req.Metadata,
		ExpiresOn:     now.Add(checkoutTTL),
		CreatedAt:     now,
	}
	if err := h.store.InsertPayment(ctx, payment); err != nil {
		h.logger.Error("insert payment failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}

	transaction := bagelpay.Transaction{
		TransactionID: store.NewID("txn"),
		Amount:        amount,
		Currency:      product.Currency,
		Type:          "payment",
		Remark:        product.Name,
		CreatedAt:     now,
	}
	if email != "" {
		transaction.Customer = &bagelpay.Customer{Email: email}
	}
	if err := h.store.InsertTransaction(ctx, transaction); err != nil {
		h.logger.Error("insert transaction failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
		return
	}

	isSubscription := product.BillingType == bagelpay.BillingSubscription
	if email != "" {
		subsDelta := 0
		if isSubscription {
			subsDelta = 1
		}
		if err := h.store.UpsertCustomer(ctx, email, name, amount, subsDelta); err != nil {
			h.logger.Error("upsert customer failed", "error", err)
			writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
			return
		}
	}

	if isSubscription {
		if err := h.store.InsertSubscription(ctx, h.newSubscription(product, email, now)); err != nil {
			h.logger.Error("insert subscription failed", "error", err)
			writeError(w, http.StatusInternalServerError, "storage failure", codeInternal)
			return
		}
	}

	writeJSON(w, http.StatusOK, paymentToResponse(&payment))
}

// newSubscription opens a subscription for a checkout on a subscription
// product. Trials start immediately; the paid billing period begins when the
// trial ends.
func (h *Handler) newSubscription(product *bagelpay.Product, email string, now time.Time) bagelpay.Subscription {
	sub := bagelpay.Subscription{
		SubscriptionID:    store.NewID("sub"),
		Status:            bagelpay.SubscriptionActive,
		ProductID:         product.ProductID,
		ProductName:       product.Name,
		RecurringInterval: product.RecurringInterval,
		NextBillingAmount: product.Price,
		PaymentMethod:     "card",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if email != "" {
		sub.Customer = &bagelpay.Customer{Email: email}
	}

	periodStart := now
	if product.TrialDays > 0 {
		trialEnd := now.Add(time.Duration(product.TrialDays) * 24 * time.Hour)
		sub.Status = bagelpay.SubscriptionTrialing
		sub.TrialStart = &now
		sub.TrialEnd = &trialEnd
		periodStart = trialEnd
	}
	periodEnd := periodStart.Add(intervalDuration(product.RecurringInterval))
	sub.BillingPeriodStart = &periodStart
	sub.BillingPeriodEnd = &periodEnd
	return sub
}

func paymentToResponse(p *store.Payment) bagelpay.CheckoutResponse {
	return bagelpay.CheckoutResponse{
		PaymentID:   p.PaymentID,
		Status:      p.Status,
		CheckoutURL: p.CheckoutURL,
		ExpiresOn:   p.ExpiresOn,
		ProductID:   p.ProductID,
		RequestID:   p.RequestID,
		Units:       strconv.Itoa(p.Units),
		SuccessURL:  p.SuccessURL,
		Metadata:    p.Metadata,
	}
}

// intervalDuration approximates one billing period. Months are 30 days in
// the sandbox.
func intervalDuration(interval string) time.Duration {
	const day = 24 * time.Hour
	switch interval {
	case "daily":
		return day
	case "weekly":
		return 7 * day
	case "monthly":
		return 30 * day
	case "3months":
		return 90 * day
	case "6months":
		return 180 * day
	default:
		return 30 * day
	}
}

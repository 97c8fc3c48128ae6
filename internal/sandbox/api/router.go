// Package api implements the HTTP surface of the BagelPay sandbox: the same
// endpoints, envelopes, and error codes the hosted API serves, backed by a
// local SQLite store.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bagelpay/bagelpay-go/internal/sandbox/store"
)

// Handler serves the sandbox endpoints.
type Handler struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler builds a Handler around st.
func NewHandler(st *store.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: st, logger: logger, now: time.Now}
}

// NewRouter mounts all sandbox routes. Every /api route requires an API key
// header, matching the hosted API's behavior.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Use(requireAPIKey)

		r.Post("/products/create", h.CreateProduct)
		r.Get("/products/list", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Post("/products/update", h.UpdateProduct)
		r.Post("/products/archive/{id}", h.ArchiveProduct)
		r.Post("/products/unarchive/{id}", h.UnarchiveProduct)

		r.Post("/payments/checkouts", h.CreateCheckout)

		r.Get("/transactions/list", h.ListTransactions)

		r.Get("/subscriptions/list", h.ListSubscriptions)
		r.Get("/subscriptions/{id}", h.GetSubscription)
		r.Post("/subscriptions/cancel/{id}", h.CancelSubscription)

		r.Get("/customers/list", h.ListCustomers)
	})

	return r
}

func requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(r.Header.Get("X-Api-Key")) == "" {
			writeError(w, http.StatusUnauthorized, "invalid api key", codeInvalidAPIKey)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// pageParams parses pageNum/pageSize with the hosted API's defaults (1, 10).
// Explicit values below 1 are rejected.
func pageParams(r *http.Request) (pageNum, pageSize int, ok bool) {
	pageNum, pageSize = 1, 10
	q := r.URL.Query()
	if v := q.Get("pageNum"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		pageNum = n
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		pageSize = n
	}
	return pageNum, pageSize, true
}

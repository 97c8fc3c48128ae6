package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagelpay/bagelpay-go/bagelpay"
	"github.com/bagelpay/bagelpay-go/internal/sandbox/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	st, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewRouter(NewHandler(st, nil))
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Api-Key", "bagel_test_key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/list", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeBody[errorEnvelope](t, rec)
	assert.Equal(t, "invalid api key", env.Msg)
	assert.Equal(t, codeInvalidAPIKey, env.Code)
}

func TestCreateProduct_Validation(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/products/create", bagelpay.CreateProductRequest{
		Name:        "Pro Plan",
		Price:       29.99,
		Currency:    "USD",
		BillingType: bagelpay.BillingSubscription,
		// recurring_interval missing
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeBody[errorEnvelope](t, rec)
	assert.Contains(t, env.Msg, "recurring_interval")
}

func TestProduct_CreateGetArchive(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/products/create", bagelpay.CreateProductRequest{
		Name:        "Ebook",
		Price:       9.5,
		Currency:    "USD",
		BillingType: bagelpay.BillingSinglePayment,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[bagelpay.Product](t, rec)
	require.NotEmpty(t, created.ProductID)
	assert.False(t, created.IsArchive)
	assert.NotEmpty(t, created.ProductURL)

	rec = doRequest(t, router, http.MethodGet, "/api/products/"+created.ProductID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/products/archive/"+created.ProductID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	archived := decodeBody[bagelpay.Product](t, rec)
	assert.True(t, archived.IsArchive)

	rec = doRequest(t, router, http.MethodPost, "/api/products/unarchive/"+created.ProductID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	unarchived := decodeBody[bagelpay.Product](t, rec)
	assert.False(t, unarchived.IsArchive)

	rec = doRequest(t, router, http.MethodGet, "/api/products/prod_missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeBody[errorEnvelope](t, rec)
	assert.Equal(t, codeNotFound, env.Code)
}

func TestCheckout_CreatesDownstreamRecords(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/products/create", bagelpay.CreateProductRequest{
		Name:              "Pro Plan",
		Price:             20.00,
		Currency:          "USD",
		BillingType:       bagelpay.BillingSubscription,
		RecurringInterval: "monthly",
		TrialDays:         7,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	product := decodeBody[bagelpay.Product](t, rec)

	rec = doRequest(t, router, http.MethodPost, "/api/payments/checkouts", bagelpay.CheckoutRequest{
		ProductID: product.ProductID,
		RequestID: "req_1",
		Units:     "2",
		Customer:  &bagelpay.Customer{Email: "buyer@example.com", Name: "Buyer"},
		Metadata:  map[string]string{"campaign": "launch"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	checkout := decodeBody[bagelpay.CheckoutResponse](t, rec)
	assert.Equal(t, "pending", checkout.Status)
	assert.Equal(t, "2", checkout.Units)
	assert.Equal(t, "req_1", checkout.RequestID)
	assert.Equal(t, map[string]string{"campaign": "launch"}, checkout.Metadata)

	// Same token replays the original session instead of opening a new one.
	rec = doRequest(t, router, http.MethodPost, "/api/payments/checkouts", bagelpay.CheckoutRequest{
		ProductID: product.ProductID,
		RequestID: "req_1",
		Units:     "2",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	replayed := decodeBody[bagelpay.CheckoutResponse](t, rec)
	assert.Equal(t, checkout.PaymentID, replayed.PaymentID)

	rec = doRequest(t, router, http.MethodGet, "/api/transactions/list", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	transactions := decodeBody[bagelpay.Page[bagelpay.Transaction]](t, rec)
	require.Equal(t, 1, transactions.Total)
	// 20.00 * 100 minor units * 2 units.
	assert.Equal(t, int64(4000), transactions.Items[0].Amount)

	rec = doRequest(t, router, http.MethodGet, "/api/subscriptions/list", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	subs := decodeBody[bagelpay.Page[bagelpay.Subscription]](t, rec)
	require.Equal(t, 1, subs.Total)
	sub := subs.Items[0]
	assert.Equal(t, bagelpay.SubscriptionTrialing, sub.Status)
	require.NotNil(t, sub.TrialEnd)
	require.NotNil(t, sub.BillingPeriodEnd)

	rec = doRequest(t, router, http.MethodGet, "/api/customers/list", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	customers := decodeBody[bagelpay.Page[bagelpay.Customer]](t, rec)
	require.Equal(t, 1, customers.Total)
	assert.Equal(t, int64(4000), customers.Items[0].TotalSpend)
	assert.Equal(t, 1, customers.Items[0].Subscriptions)
}

func TestCheckout_UnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/payments/checkouts", bagelpay.CheckoutRequest{
		ProductID: "prod_missing",
		RequestID: "req_1",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelSubscription_EndOfPeriod(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/products/create", bagelpay.CreateProductRequest{
		Name:              "Pro Plan",
		Price:             20.00,
		Currency:          "USD",
		BillingType:       bagelpay.BillingSubscription,
		RecurringInterval: "monthly",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	product := decodeBody[bagelpay.Product](t, rec)

	rec = doRequest(t, router, http.MethodPost, "/api/payments/checkouts", bagelpay.CheckoutRequest{
		ProductID: product.ProductID,
		RequestID: "req_1",
		Customer:  &bagelpay.Customer{Email: "buyer@example.com"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/subscriptions/list", nil)
	subs := decodeBody[bagelpay.Page[bagelpay.Subscription]](t, rec)
	require.Equal(t, 1, subs.Total)
	sub := subs.Items[0]
	assert.Equal(t, bagelpay.SubscriptionActive, sub.Status)
	assert.Nil(t, sub.CancelAt)

	rec = doRequest(t, router, http.MethodPost, "/api/subscriptions/cancel/"+sub.SubscriptionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	canceled := decodeBody[bagelpay.Subscription](t, rec)
	assert.Equal(t, bagelpay.SubscriptionActive, canceled.Status)
	require.NotNil(t, canceled.CancelAt)
	assert.Equal(t, *sub.BillingPeriodEnd, *canceled.CancelAt)

	rec = doRequest(t, router, http.MethodPost, "/api/subscriptions/cancel/sub_missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList_RejectsBadPageParams(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/products/list?pageSize=0",
		"/api/transactions/list?pageSize=-1",
		"/api/subscriptions/list?pageNum=0",
		"/api/customers/list?pageNum=x",
	} {
		rec := doRequest(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagelpay/bagelpay-go/bagelpay"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleProduct(id string, created time.Time) bagelpay.Product {
	return bagelpay.Product{
		ProductID:         id,
		Name:              "Pro Plan",
		Description:       "monthly pro tier",
		Price:             29.99,
		Currency:          "USD",
		BillingType:       bagelpay.BillingSubscription,
		TaxCategory:       "saas_services",
		RecurringInterval: "monthly",
		TrialDays:         7,
		ProductURL:        "http://sandbox/buy/" + id,
		CreatedAt:         created,
		UpdatedAt:         created,
	}
}

func TestStore_ProductLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	p := sampleProduct("prod_1", now)
	require.NoError(t, st.InsertProduct(ctx, p))

	got, err := st.GetProduct(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, p, *got)

	p.Name = "Pro Plan v2"
	p.Price = 39.99
	p.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, st.UpdateProduct(ctx, p))

	got, err = st.GetProduct(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, "Pro Plan v2", got.Name)
	assert.Equal(t, 39.99, got.Price)

	require.NoError(t, st.SetProductArchived(ctx, "prod_1", true, now.Add(2*time.Minute)))
	got, err = st.GetProduct(ctx, "prod_1")
	require.NoError(t, err)
	assert.True(t, got.IsArchive)

	require.NoError(t, st.SetProductArchived(ctx, "prod_1", false, now.Add(3*time.Minute)))
	got, err = st.GetProduct(ctx, "prod_1")
	require.NoError(t, err)
	assert.False(t, got.IsArchive)
}

func TestStore_NotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.GetProduct(ctx, "prod_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetSubscription(ctx, "sub_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetPaymentByRequestID(ctx, "req_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.UpdateProduct(ctx, sampleProduct("prod_missing", time.Now()))
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.MarkSubscriptionCanceled(ctx, "sub_missing", time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListProductsPagination(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 25; i++ {
		p := sampleProduct(NewID("prod"), base.Add(time.Duration(i)*time.Second))
		require.NoError(t, st.InsertProduct(ctx, p))
	}

	total, items, err := st.ListProducts(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, items, 10)

	total, items, err = st.ListProducts(ctx, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, items, 5)

	total, items, err = st.ListProducts(ctx, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Empty(t, items)
}

func TestStore_SubscriptionRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	trialEnd := now.Add(7 * 24 * time.Hour)
	periodEnd := trialEnd.Add(30 * 24 * time.Hour)

	sub := bagelpay.Subscription{
		SubscriptionID:     "sub_1",
		Status:             bagelpay.SubscriptionTrialing,
		ProductID:          "prod_1",
		ProductName:        "Pro Plan",
		Customer:           &bagelpay.Customer{Email: "buyer@example.com"},
		RecurringInterval:  "monthly",
		NextBillingAmount:  29.99,
		PaymentMethod:      "card",
		TrialStart:         &now,
		TrialEnd:           &trialEnd,
		BillingPeriodStart: &trialEnd,
		BillingPeriodEnd:   &periodEnd,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, st.InsertSubscription(ctx, sub))

	got, err := st.GetSubscription(ctx, "sub_1")
	require.NoError(t, err)
	assert.Equal(t, sub, *got)

	// End-of-period cancellation keeps the status.
	require.NoError(t, st.MarkSubscriptionCanceled(ctx, "sub_1", periodEnd, now.Add(time.Minute)))
	got, err = st.GetSubscription(ctx, "sub_1")
	require.NoError(t, err)
	assert.Equal(t, bagelpay.SubscriptionTrialing, got.Status)
	require.NotNil(t, got.CancelAt)
	assert.Equal(t, periodEnd, *got.CancelAt)
}

func TestStore_CustomerAggregates(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertCustomer(ctx, "a@example.com", "Ada", 2999, 1))
	require.NoError(t, st.UpsertCustomer(ctx, "a@example.com", "", 1500, 0))
	require.NoError(t, st.UpsertCustomer(ctx, "b@example.com", "", 500, 0))

	total, items, err := st.ListCustomers(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)

	byEmail := map[string]bagelpay.Customer{}
	for _, c := range items {
		byEmail[c.Email] = c
	}
	assert.Equal(t, int64(4499), byEmail["a@example.com"].TotalSpend)
	assert.Equal(t, "Ada", byEmail["a@example.com"].Name)
	assert.Equal(t, 1, byEmail["a@example.com"].Subscriptions)
	assert.Equal(t, int64(500), byEmail["b@example.com"].TotalSpend)
}

func TestNewID(t *testing.T) {
	id := NewID("prod")
	assert.True(t, strings.HasPrefix(id, "prod_"))
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, NewID("prod"))
}

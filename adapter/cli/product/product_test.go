package product

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
	"github.com/bagelpay/bagelpay-go/bagelpay"
	sandboxapi "github.com/bagelpay/bagelpay-go/internal/sandbox/api"
	"github.com/bagelpay/bagelpay-go/internal/sandbox/store"
)

// setupTestApp wires the CLI against an in-memory sandbox server.
func setupTestApp(t *testing.T) *cli.App {
	t.Helper()

	st, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	server := httptest.NewServer(sandboxapi.NewRouter(sandboxapi.NewHandler(st, nil)))
	t.Cleanup(server.Close)

	client, err := bagelpay.New(bagelpay.Config{APIKey: "bagel_test_key", BaseURL: server.URL})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return &cli.App{Client: client}
}

func TestCreateCmd_CreatesProduct(t *testing.T) {
	app := setupTestApp(t)
	cli.SetApp(app)
	defer cli.SetApp(nil)

	ctx := context.Background()

	// Reset flags
	description = ""
	price = 9.99
	currency = "USD"
	billingType = "single_payment"
	taxInclusive = false
	taxCategory = ""
	recurringInterval = ""
	trialDays = 0

	var out bytes.Buffer
	createCmd.SetOut(&out)
	createCmd.SetContext(ctx)

	err := createCmd.RunE(createCmd, []string{"Ebook"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Created product: Ebook")
	assert.Contains(t, out.String(), "9.99 USD")

	page, err := app.Client.ListProducts(ctx, bagelpay.DefaultListParams())
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Ebook", page.Items[0].Name)
}

func TestCreateCmd_RejectsSubscriptionWithoutInterval(t *testing.T) {
	app := setupTestApp(t)
	cli.SetApp(app)
	defer cli.SetApp(nil)

	price = 19.99
	currency = "USD"
	billingType = "subscription"
	recurringInterval = ""
	trialDays = 0

	createCmd.SetOut(&bytes.Buffer{})
	createCmd.SetContext(context.Background())

	err := createCmd.RunE(createCmd, []string{"Pro Plan"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "recurring_interval")
}

func TestListCmd_ShowsProducts(t *testing.T) {
	app := setupTestApp(t)
	cli.SetApp(app)
	defer cli.SetApp(nil)

	ctx := context.Background()
	_, err := app.Client.CreateProduct(ctx, bagelpay.CreateProductRequest{
		Name:        "Ebook",
		Price:       9.99,
		Currency:    "USD",
		BillingType: bagelpay.BillingSinglePayment,
	})
	require.NoError(t, err)

	pageNum = 1
	pageSize = 10

	var out bytes.Buffer
	listCmd.SetOut(&out)
	listCmd.SetContext(ctx)

	err = listCmd.RunE(listCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Ebook")
	assert.Contains(t, out.String(), "1 total")
}

func TestArchiveCmd_RoundTrip(t *testing.T) {
	app := setupTestApp(t)
	cli.SetApp(app)
	defer cli.SetApp(nil)

	ctx := context.Background()
	created, err := app.Client.CreateProduct(ctx, bagelpay.CreateProductRequest{
		Name:        "Ebook",
		Price:       9.99,
		Currency:    "USD",
		BillingType: bagelpay.BillingSinglePayment,
	})
	require.NoError(t, err)

	var out bytes.Buffer
	archiveCmd.SetOut(&out)
	archiveCmd.SetContext(ctx)
	require.NoError(t, archiveCmd.RunE(archiveCmd, []string{created.ProductID}))
	assert.Contains(t, out.String(), "Archived product")

	got, err := app.Client.GetProduct(ctx, created.ProductID)
	require.NoError(t, err)
	assert.True(t, got.IsArchive)

	unarchiveCmd.SetOut(&bytes.Buffer{})
	unarchiveCmd.SetContext(ctx)
	require.NoError(t, unarchiveCmd.RunE(unarchiveCmd, []string{created.ProductID}))

	got, err = app.Client.GetProduct(ctx, created.ProductID)
	require.NoError(t, err)
	assert.False(t, got.IsArchive)
}

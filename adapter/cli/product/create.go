package product

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
	"github.com/bagelpay/bagelpay-go/bagelpay"
)

var (
	description       string
	price             float64
	currency          string
	billingType       string
	taxInclusive      bool
	taxCategory       string
	recurringInterval string
	trialDays         int
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new product",
	Long: `Create a new product in the catalog.

Billing types:
  single_payment - One-time purchase
  subscription   - Recurring purchase (requires --interval)

Intervals:
  daily, weekly, monthly, 3months, 6months

Examples:
  bagelpay product create "Ebook" -p 9.99
  bagelpay product create "Pro Plan" -p 29.99 -b subscription -i monthly --trial-days 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		req := bagelpay.CreateProductRequest{
			Name:              args[0],
			Description:       description,
			Price:             price,
			Currency:          currency,
			BillingType:       bagelpay.BillingType(billingType),
			TaxInclusive:      taxInclusive,
			TaxCategory:       taxCategory,
			RecurringInterval: recurringInterval,
			TrialDays:         trialDays,
		}

		created, err := app.Client.CreateProduct(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created product: %s\n", created.Name)
		fmt.Fprintf(out, "  ID: %s\n", created.ProductID)
		fmt.Fprintf(out, "  Price: %.2f %s\n", created.Price, created.Currency)
		fmt.Fprintf(out, "  Billing: %s\n", created.BillingType)
		if created.ProductURL != "" {
			fmt.Fprintf(out, "  URL: %s\n", created.ProductURL)
		}
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&description, "description", "d", "", "product description")
	createCmd.Flags().Float64VarP(&price, "price", "p", 0, "price in major currency units")
	createCmd.Flags().StringVarP(&currency, "currency", "c", "USD", "ISO currency code")
	createCmd.Flags().StringVarP(&billingType, "billing", "b", "single_payment", "billing type (single_payment, subscription)")
	createCmd.Flags().BoolVar(&taxInclusive, "tax-inclusive", false, "price includes tax")
	createCmd.Flags().StringVar(&taxCategory, "tax-category", "", "tax category")
	createCmd.Flags().StringVarP(&recurringInterval, "interval", "i", "", "billing interval for subscriptions")
	createCmd.Flags().IntVar(&trialDays, "trial-days", 0, "free trial length in days")
}

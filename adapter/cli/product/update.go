package product

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
	"github.com/bagelpay/bagelpay-go/bagelpay"
)

var updateCmd = &cobra.Command{
	Use:   "update [product-id] [name]",
	Short: "Update a product",
	Long: `Replace a product's details. All fields are resent, so pass the
full desired state, not a delta.

Examples:
  bagelpay product update prod_abc "Pro Plan v2" -p 39.99 -b subscription -i monthly`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		req := bagelpay.UpdateProductRequest{
			ProductID:         args[0],
			Name:              args[1],
			Description:       description,
			Price:             price,
			Currency:          currency,
			BillingType:       bagelpay.BillingType(billingType),
			TaxInclusive:      taxInclusive,
			TaxCategory:       taxCategory,
			RecurringInterval: recurringInterval,
			TrialDays:         trialDays,
		}

		updated, err := app.Client.UpdateProduct(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated product %s\n", updated.ProductID)
		printProduct(cmd, updated)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&description, "description", "d", "", "product description")
	updateCmd.Flags().Float64VarP(&price, "price", "p", 0, "price in major currency units")
	updateCmd.Flags().StringVarP(&currency, "currency", "c", "USD", "ISO currency code")
	updateCmd.Flags().StringVarP(&billingType, "billing", "b", "single_payment", "billing type (single_payment, subscription)")
	updateCmd.Flags().BoolVar(&taxInclusive, "tax-inclusive", false, "price includes tax")
	updateCmd.Flags().StringVar(&taxCategory, "tax-category", "", "tax category")
	updateCmd.Flags().StringVarP(&recurringInterval, "interval", "i", "", "billing interval for subscriptions")
	updateCmd.Flags().IntVar(&trialDays, "trial-days", 0, "free trial length in days")
}

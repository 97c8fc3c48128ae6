package product

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
	"github.com/bagelpay/bagelpay-go/bagelpay"
)

var getCmd = &cobra.Command{
	Use:   "get [product-id]",
	Short: "Show a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		p, err := app.Client.GetProduct(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}

		printProduct(cmd, p)
		return nil
	},
}

func printProduct(cmd *cobra.Command, p *bagelpay.Product) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", p.Name)
	fmt.Fprintf(out, "  ID: %s\n", p.ProductID)
	fmt.Fprintf(out, "  Price: %.2f %s\n", p.Price, p.Currency)
	fmt.Fprintf(out, "  Billing: %s\n", p.BillingType)
	if p.RecurringInterval != "" {
		fmt.Fprintf(out, "  Interval: %s\n", p.RecurringInterval)
	}
	if p.TrialDays > 0 {
		fmt.Fprintf(out, "  Trial: %d days\n", p.TrialDays)
	}
	if p.IsArchive {
		fmt.Fprintln(out, "  Archived: yes")
	}
	if p.ProductURL != "" {
		fmt.Fprintf(out, "  URL: %s\n", p.ProductURL)
	}
}

package subscription

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
	"github.com/bagelpay/bagelpay-go/bagelpay"
)

var getCmd = &cobra.Command{
	Use:   "get [subscription-id]",
	Short: "Show a subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		sub, err := app.Client.GetSubscription(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}

		printSubscription(cmd, sub)
		return nil
	},
}

func printSubscription(cmd *cobra.Command, sub *bagelpay.Subscription) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", sub.SubscriptionID)
	fmt.Fprintf(out, "  Status: %s\n", sub.Status)
	if sub.ProductName != "" {
		fmt.Fprintf(out, "  Product: %s (%s)\n", sub.ProductName, sub.ProductID)
	}
	if sub.Customer != nil && sub.Customer.Email != "" {
		fmt.Fprintf(out, "  Customer: %s\n", sub.Customer.Email)
	}
	if sub.RecurringInterval != "" {
		fmt.Fprintf(out, "  Interval: %s\n", sub.RecurringInterval)
	}
	if sub.TrialEnd != nil {
		fmt.Fprintf(out, "  Trial ends: %s\n", sub.TrialEnd.Format("2006-01-02"))
	}
	if sub.BillingPeriodEnd != nil {
		fmt.Fprintf(out, "  Period ends: %s\n", sub.BillingPeriodEnd.Format("2006-01-02"))
	}
	if sub.CancelAt != nil {
		fmt.Fprintf(out, "  Cancels at: %s\n", sub.CancelAt.Format("2006-01-02"))
	}
}

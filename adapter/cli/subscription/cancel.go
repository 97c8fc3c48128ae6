package subscription

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel [subscription-id]",
	Short: "Cancel a subscription",
	Long: `Schedule a subscription for cancellation at the end of its current
billing period. The subscription stays active until then.

Examples:
  bagelpay subscription cancel sub_abc`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		sub, err := app.Client.CancelSubscription(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to cancel subscription: %w", err)
		}

		out := cmd.OutOrStdout()
		if sub.CancelAt != nil {
			fmt.Fprintf(out, "Subscription %s will cancel on %s.\n",
				sub.SubscriptionID, sub.CancelAt.Format("2006-01-02"))
		} else {
			fmt.Fprintf(out, "Subscription %s canceled.\n", sub.SubscriptionID)
		}
		return nil
	},
}

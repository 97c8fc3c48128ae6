package subscription

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
	"github.com/bagelpay/bagelpay-go/bagelpay"
)

var (
	pageNum  int
	pageSize int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List subscriptions",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		params := bagelpay.ListParams{PageNum: pageNum, PageSize: pageSize}
		page, err := app.Client.ListSubscriptions(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list subscriptions: %w", err)
		}

		out := cmd.OutOrStdout()
		if page.Total == 0 {
			fmt.Fprintln(out, "No subscriptions yet.")
			return nil
		}

		fmt.Fprintf(out, "Subscriptions (page %d/%d, %d total):\n", pageNum, page.TotalPages(pageSize), page.Total)
		fmt.Fprintln(out, strings.Repeat("-", 70))
		for _, sub := range page.Items {
			email := ""
			if sub.Customer != nil {
				email = sub.Customer.Email
			}
			cancel := ""
			if sub.CancelAt != nil {
				cancel = "  cancels " + sub.CancelAt.Format("2006-01-02")
			}
			fmt.Fprintf(out, "%s  %-9s %-20s %s%s\n",
				sub.SubscriptionID, sub.Status, sub.ProductName, email, cancel)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&pageNum, "page", 1, "page number (1-based)")
	listCmd.Flags().IntVar(&pageSize, "size", 10, "items per page")
}

package customer

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
	Short:   "List customers",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		params := bagelpay.ListParams{PageNum: pageNum, PageSize: pageSize}
		page, err := app.Client.ListCustomers(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list customers: %w", err)
		}

		out := cmd.OutOrStdout()
		if page.Total == 0 {
			fmt.Fprintln(out, "No customers yet.")
			return nil
		}

		fmt.Fprintf(out, "Customers (page %d/%d, %d total):\n", pageNum, page.TotalPages(pageSize), page.Total)
		fmt.Fprintln(out, strings.Repeat("-", 70))
		for _, c := range page.Items {
			fmt.Fprintf(out, "%-30s %-20s spend: %10.2f  subs: %d\n",
				c.Email, c.Name, float64(c.TotalSpend)/100, c.Subscriptions)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&pageNum, "page", 1, "page number (1-based)")
	listCmd.Flags().IntVar(&pageSize, "size", 10, "items per page")
}

package transaction

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
	Short:   "List transactions",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		params := bagelpay.ListParams{PageNum: pageNum, PageSize: pageSize}
		page, err := app.Client.ListTransactions(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}

		out := cmd.OutOrStdout()
		if page.Total == 0 {
			fmt.Fprintln(out, "No transactions yet.")
			return nil
		}

		fmt.Fprintf(out, "Transactions (page %d/%d, %d total):\n", pageNum, page.TotalPages(pageSize), page.Total)
		fmt.Fprintln(out, strings.Repeat("-", 70))
		for _, tx := range page.Items {
			email := ""
			if tx.Customer != nil {
				email = tx.Customer.Email
			}
			fmt.Fprintf(out, "%s  %10.2f %s  %-8s %s  %s\n",
				tx.TransactionID, float64(tx.Amount)/100, tx.Currency, tx.Type,
				tx.CreatedAt.Format("2006-01-02 15:04"), email)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&pageNum, "page", 1, "page number (1-based)")
	listCmd.Flags().IntVar(&pageSize, "size", 10, "items per page")
}

package product

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
	Use:   "list",
	Short: "List products",
	Long: `List products in the catalog, one page at a time.

Examples:
  bagelpay product list
  bagelpay product list --page 2 --size 50`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		params := bagelpay.ListParams{PageNum: pageNum, PageSize: pageSize}
		page, err := app.Client.ListProducts(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		out := cmd.OutOrStdout()
		if page.Total == 0 {
			fmt.Fprintln(out, "No products found. Create one with: bagelpay product create \"Name\" -p 9.99")
			return nil
		}

		fmt.Fprintf(out, "Products (page %d/%d, %d total):\n", pageNum, page.TotalPages(pageSize), page.Total)
		fmt.Fprintln(out, strings.Repeat("-", 70))
		for _, p := range page.Items {
			flag := ""
			if p.IsArchive {
				flag = " [archived]"
			}
			fmt.Fprintf(out, "%s  %-30s %8.2f %s  %s%s\n",
				p.ProductID, p.Name, p.Price, p.Currency, p.BillingType, flag)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&pageNum, "page", 1, "page number (1-based)")
	listCmd.Flags().IntVar(&pageSize, "size", 10, "items per page")
}

package product

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [product-id]",
	Short: "Archive a product",
	Long: `Archive a product so it can no longer be purchased. History and
existing subscriptions are unaffected.

Examples:
  bagelpay product archive prod_abc`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		p, err := app.Client.ArchiveProduct(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to archive product: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Archived product %s (%s)\n", p.ProductID, p.Name)
		return nil
	},
}

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive [product-id]",
	Short: "Unarchive a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		p, err := app.Client.UnarchiveProduct(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to unarchive product: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Unarchived product %s (%s)\n", p.ProductID, p.Name)
		return nil
	},
}

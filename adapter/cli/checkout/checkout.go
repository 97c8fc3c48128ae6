package checkout

import (
	"github.com/spf13/cobra"
)

// Cmd is the checkout command group
var Cmd = &cobra.Command{
	Use:   "checkout",
	Short: "Create checkout sessions",
	Long:  `Create hosted checkout sessions for products.`,
}

func init() {
	Cmd.AddCommand(createCmd)
}

package customer

import (
	"github.com/spf13/cobra"
)

// Cmd is the customer command group
var Cmd = &cobra.Command{
	Use:   "customer",
	Short: "Inspect customers",
	Long:  `List customers known to the merchant account.`,
}

func init() {
	Cmd.AddCommand(listCmd)
}

package transaction

import (
	"github.com/spf13/cobra"
)

// Cmd is the transaction command group
var Cmd = &cobra.Command{
	Use:   "transaction",
	Short: "Inspect transactions",
	Long:  `List settled transactions on the merchant account.`,
}

func init() {
	Cmd.AddCommand(listCmd)
}

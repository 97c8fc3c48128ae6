package product

import (
	"github.com/spf13/cobra"
)

// Cmd is the product command group
var Cmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products",
	Long:  `Create, list, update, archive, and unarchive products in the catalog.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(archiveCmd)
	Cmd.AddCommand(unarchiveCmd)
}

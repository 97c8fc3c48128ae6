package subscription

import (
	"github.com/spf13/cobra"
)

// Cmd is the subscription command group
var Cmd = &cobra.Command{
	Use:   "subscription",
	Short: "Manage subscriptions",
	Long:  `List, inspect, and cancel customer subscriptions.`,
}

func init() {
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(cancelCmd)
}

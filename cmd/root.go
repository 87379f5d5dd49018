package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "support-bot",
	Short: "Conversational storefront and warranty-service bot (orders, tickets, operator alerts)",
	RunE:  runAPI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(ticketsCmd)
}

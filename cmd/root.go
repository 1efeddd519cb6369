package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "price-compare",
	Short: "Product catalog search, price comparison and similar image lookup",
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(compareCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

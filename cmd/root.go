package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "invierte",
	Short: "Invierte en Coyoacán: property exploration backend",
	Long: `Backend for the Invierte en Coyoacán dashboard. Serves the prepared
cadastral property dataset with category, budget and neighborhood filters,
investment-score KPIs and per-neighborhood summaries.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

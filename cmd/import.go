package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invierte-coyoacan/invest-backend-go/internal/config"
	"github.com/invierte-coyoacan/invest-backend-go/internal/database"
	"github.com/invierte-coyoacan/invest-backend-go/internal/importer"
)

var importCSVPath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a materialized CSV dataset into the property store",
	Long: `Replaces the properties table with the rows of the given CSV export.
The file must carry the prepared dataset columns by name; valor_estimado and
cal_inv may be omitted, the server derives them on load.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
			return err
		}
		defer database.Close()

		count, err := importer.New(database.GetDB()).ImportFile(importCSVPath)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d properties into %s\n", count, cfg.DBPath)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importCSVPath, "csv", "data/coyoacan_clusters.csv", "path of the CSV dataset export")
	rootCmd.AddCommand(importCmd)
}

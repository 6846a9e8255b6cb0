package main

import (
	"log"

	"github.com/spf13/cobra"

	"dealfinder/internal/app"
	applog "dealfinder/internal/log"
)

var exportDSN string

var exportCmd = &cobra.Command{
	Use:   "export-catalog",
	Short: "Write the active catalog into a SQLite file for CATALOG_DSN",
	Run: func(cmd *cobra.Command, args []string) {
		_, cat := mustLoad()
		if err := app.ExportCatalog(cat, exportDSN); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		applog.Info(nil, "catalog.exported", map[string]any{"dsn": exportDSN, "products": cat.Len()})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDSN, "dsn", "catalog.db", "SQLite DSN to write")
	rootCmd.AddCommand(exportCmd)
}

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"dealfinder/internal/app"
	"dealfinder/internal/catalog"
	"dealfinder/internal/config"
	applog "dealfinder/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "dealfinder",
	Short: "Product suggestion and comparison backend",
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// mustLoad reads config and the catalog or exits.
func mustLoad() (config.Config, *catalog.Catalog) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	cat, source, err := app.LoadCatalog(cfg)
	if err != nil {
		applog.Error(nil, "catalog.load.fail", err, map[string]any{"source": source})
		os.Exit(1)
	}
	applog.Info(nil, "catalog.loaded", map[string]any{"source": source, "products": cat.Len()})
	return cfg, cat
}

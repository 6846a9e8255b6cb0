package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dealfinder/internal/http/handlers"
	"dealfinder/internal/http/router"
	applog "dealfinder/internal/log"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer() {
	cfg, cat := mustLoad()

	// Optional file logging
	if cfg.LogFile != "" {
		closer, err := applog.TeeFile(cfg.LogFile)
		if err != nil {
			applog.Warn(nil, "log.file.fail", map[string]any{"path": cfg.LogFile, "err": err.Error()})
		} else {
			defer closer.Close()
		}
	}
	applog.Info(nil, "startup.config", map[string]any{
		"addr":         cfg.Addr(),
		"catalog_file": cfg.CatalogFile,
		"catalog_dsn":  cfg.CatalogDSN,
		"cors_origins": cfg.CORSOrigins,
		"log_file":     cfg.LogFile,
	})

	app := router.New(cfg, handlers.NewDeps(cat), nil)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		applog.Info(nil, "server.shutdown", nil)
		_ = app.Shutdown()
	}()

	applog.Info(nil, "server.listen", map[string]any{"addr": cfg.Addr()})
	if err := app.Listen(cfg.Addr()); err != nil {
		applog.Error(nil, "server.listen.fail", err, nil)
		os.Exit(1)
	}
}

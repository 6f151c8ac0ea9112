// Standalone HTTP simulation server for bond-lab.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mingzhangyang/bond-lab/internal/config"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/internal/interfaces/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to configuration file (env and defaults when empty)")
	httpPort := flag.Int("http-port", 0, "HTTP server port (overrides config)")
	preset := flag.String("preset", "", "preset molecule to load at start")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:       logging.ParseLevel(cfg.Log.Level),
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	logger.Info("starting bond-lab API server",
		logging.String("version", cli.Version),
		logging.String("host", cfg.Server.Host),
		logging.Int("port", cfg.Server.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = cli.RunServer(ctx, cfg, *configPath, logger, cli.ServeOptions{
		Port:   *httpPort,
		Preset: *preset,
		Watch:  true,
	})
	if err != nil {
		logger.Error("server exited with error", logging.Err(err))
		return 1
	}
	logger.Info("server stopped")
	return 0
}

//Personal.AI order the ending

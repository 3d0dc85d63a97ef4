package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-chat-genius/internal/adapter"
	"github.com/MKhiriev/go-chat-genius/internal/client"
	"github.com/MKhiriev/go-chat-genius/internal/config"
	"github.com/MKhiriev/go-chat-genius/internal/logger"
	"github.com/MKhiriev/go-chat-genius/internal/service"
	"github.com/MKhiriev/go-chat-genius/internal/tui"
	"github.com/MKhiriev/go-chat-genius/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run starts the client and returns the process exit code. Startup errors
// are printed to stderr.
func run(args []string, stderr io.Writer) int {
	cfg, err := config.GetClientConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error getting configs: %v\n", err)
		return 1
	}

	log := logger.NewClientLogger("chat-genius-client", cfg.Log.FilePath, cfg.Log.Level)
	log.Info().
		Str("version", valueOrNA(buildVersion)).
		Str("commit", valueOrNA(buildCommit)).
		Str("server", cfg.Adapter.HTTPAddress).
		Msg("starting client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintf(stderr, "create server adapter: %v\n", err)
		return 1
	}

	port := tui.NewPort()
	services := service.NewClientServices(serverAdapter, port, cfg.App, log)
	ui := tui.New(services, port, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintf(stderr, "init client app: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(stderr, "client error: %v\n", err)
		return 1
	}
	return 0
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

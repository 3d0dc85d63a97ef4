package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-genius/internal/config"
	"github.com/MKhiriev/go-chat-genius/internal/logger"
	"github.com/MKhiriev/go-chat-genius/internal/service"
	"github.com/MKhiriev/go-chat-genius/internal/workers"
)

var _ Client = (*App)(nil)

type App struct {
	services   *service.ClientServices
	ui         UI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionService == nil || services.StatusJob == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("client ui is not initialized")
	}

	return &App{
		services:   services,
		ui:         ui,
		workersCfg: workersCfg,
		logger:     logger,
	}, nil
}

// Run starts the status poller, blocks in the UI and then shuts the session
// down: workers are stopped and pending deferred messages are cancelled
// before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := workers.NewClientWorkers(ctx, a.workersCfg, a.services, a.logger)
	w.Run()

	err := a.ui.Run(ctx)

	cancel()
	w.Stop()
	a.services.SessionService.Close()
	a.logger.Info().Msg("client stopped")

	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

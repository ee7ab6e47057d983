// Package server initializes and runs the reference backend. It selects the
// storage backend, runs migrations, handles graceful shutdown, and serves the
// REST API.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/useradmin/internal/logging"
	"github.com/dmitrijs2005/useradmin/internal/server/config"
	"github.com/dmitrijs2005/useradmin/internal/server/httpapi"
	"github.com/dmitrijs2005/useradmin/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/useradmin/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	server      *httpapi.Server
}

// NewApp opens the configured storage, migrates it and builds the HTTP stack.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	m, err := openStorage(ctx, c)
	if err != nil {
		return nil, err
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	us := services.NewUserService(m, c)
	ls := services.NewLovService(m)
	h := httpapi.NewHandler(us, ls, logger, httpapi.NewMetrics())
	srv := httpapi.NewServer(c.HTTPAddr, httpapi.NewRouter(h, c.PathPrefix), logger, c.ShutdownTimeout)

	return &App{config: c, logger: logger, repomanager: m, server: srv}, nil
}

func openStorage(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.Storage {
	case config.StorageMemory:
		return repomanager.NewInMemoryRepositoryManager(), nil
	case config.StoragePostgres:
		db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		return repomanager.NewPostgresRepositoryManager(db), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}
}

// Run serves until SIGINT, SIGTERM or SIGQUIT, then drains requests and
// closes storage.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage, "prefix", app.config.PathPrefix)

	runErr := app.server.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "server stopped", "error", runErr)
	}

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}

	app.logger.Info(ctx, "Stopped")
	return runErr
}

// Package server wires the tracking server together: it picks the
// repository backend, runs the gRPC and metrics endpoints and handles
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/droplogistics/internal/logging"
	"github.com/dmitrijs2005/droplogistics/internal/server/config"
	"github.com/dmitrijs2005/droplogistics/internal/server/metrics"
	"github.com/dmitrijs2005/droplogistics/internal/server/repositories/repomanager"

	gs "github.com/dmitrijs2005/droplogistics/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager

	mu   sync.Mutex
	errs []error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	repos, err := newRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return newApp(c, logger, repos), nil
}

func newApp(c *config.Config, logger logging.Logger, repos repomanager.RepositoryManager) *App {
	return &App{config: c, logger: logger, repos: repos}
}

// newRepositoryManager uses PostgreSQL when a DSN is configured and the
// in-memory demo store otherwise.
func newRepositoryManager(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
	if dsn == "" {
		return repomanager.NewMemoryRepositoryManager(), nil
	}
	return repomanager.NewPostgresRepositoryManager(ctx, dsn)
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) fail(ctx context.Context, cancelFunc context.CancelFunc, err error) {
	app.logger.Error(ctx, err.Error())
	app.mu.Lock()
	app.errs = append(app.errs, err)
	app.mu.Unlock()
	cancelFunc()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.repos.Shipments(), app.config.SecretKey)

	if err != nil {
		app.fail(ctx, cancelFunc, err)
		return
	}

	if err := s.Run(ctx); err != nil {
		app.fail(ctx, cancelFunc, fmt.Errorf("grpc server: %w", err))
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := metrics.Serve(ctx, app.config.MetricsAddr, app.logger.With("module", "metrics")); err != nil {
		app.fail(ctx, cancelFunc, fmt.Errorf("metrics server: %w", err))
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the endpoints fails. The repositories are closed before it returns.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.errs = append(app.errs, fmt.Errorf("close repositories: %w", err))
	}

	app.logger.Info(ctx, "App stopped")
	return errors.Join(app.errs...)
}

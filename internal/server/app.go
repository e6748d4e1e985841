// Package server wires configuration, storage, services and transports
// into one process and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/foodie/internal/logging"
	"github.com/dmitrijs2005/foodie/internal/server/config"
	"github.com/dmitrijs2005/foodie/internal/server/httpapi"
	"github.com/dmitrijs2005/foodie/internal/server/payments"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/foodie/internal/server/services"
	"github.com/dmitrijs2005/foodie/internal/server/storage"

	gs "github.com/dmitrijs2005/foodie/internal/server/grpc"
)

const healthCheckInterval = 10 * time.Second

// seams for tests
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
	newImageStore        = func(ctx context.Context, cfg *config.Config) (httpapi.ImageStore, error) {
		return storage.NewImageStore(ctx, cfg)
	}
	newPaymentProcessor = func(cfg *config.Config) payments.Processor {
		return payments.NewStripeProcessor(cfg.StripeSecretKey)
	}
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *httpapi.Server
	health *gs.HealthServer
}

// NewApp opens the database, applies migrations and builds both servers.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	images, err := newImageStore(ctx, c)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("image storage init error: %w", err)
	}

	h := httpapi.NewHandler(httpapi.Handler{
		Tokens:   services.NewTokenService(c),
		Users:    services.NewUserService(db, rm),
		Menu:     services.NewMenuService(db, rm),
		Images:   images,
		Carts:    services.NewCartService(db, rm),
		Reviews:  services.NewReviewService(db, rm),
		Payments: services.NewPaymentService(db, rm),
		Intents:  payments.NewBridge(newPaymentProcessor(c), c.PaymentCurrency, logger),
		Stats:    services.NewStatsService(db, rm),
	}, logger)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		http:   httpapi.NewServer(c.EndpointAddrHTTP, httpapi.NewRouter(h, c.CORSAllowedOrigins), logger, c.ShutdownTimeout),
		health: gs.NewHealthServer(c.EndpointAddrGRPC, logger, db, healthCheckInterval),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run blocks until ctx is cancelled, a signal arrives or either server
// fails. Either server failing stops the other.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := app.http.Run(ctx); err != nil {
			app.logger.Error(ctx, "http server error", "err", err)
			cancelFunc()
		}
	}()
	go func() {
		defer wg.Done()
		if err := app.health.Run(ctx); err != nil {
			app.logger.Error(ctx, "grpc server error", "err", err)
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "err", err)
	}
	app.logger.Info(ctx, "App stopped")
}

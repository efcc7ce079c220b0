package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/config"
	"github.com/GlebRadaev/auctionhouse/internal/events"
	"github.com/GlebRadaev/auctionhouse/internal/handlers"
	"github.com/GlebRadaev/auctionhouse/internal/jobs"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	"github.com/GlebRadaev/auctionhouse/internal/repo"
	"github.com/GlebRadaev/auctionhouse/internal/service"
	"github.com/GlebRadaev/auctionhouse/pkg/clients"
	"github.com/GlebRadaev/auctionhouse/pkg/logger"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	clock  *wallclock.Policy
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	runner *jobs.Runner
	pool   *pgxpool.Pool

	schemaVersion int64
	closers       []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err = a.build(ctx, cfg); err != nil {
		return err
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startJobRunner(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// build wires storage, services, handlers and the job runner for cfg.
func (a *Application) build(ctx context.Context, cfg *config.Config) error {
	clock, err := wallclock.New(cfg.TimeZone, cfg.ZoneStripped, wallclock.SystemClock{})
	if err != nil {
		return fmt.Errorf("can't load time zone: %w", err)
	}
	initialBalance, err := decimal.NewFromString(cfg.InitialBalance)
	if err != nil || initialBalance.IsNegative() {
		return fmt.Errorf("invalid initial balance %q", cfg.InitialBalance)
	}

	var pinger handlers.Pinger
	if cfg.Database == config.MemoryDatabase {
		zap.L().Warn("running on the in-memory ledger, state is lost on exit")
		a.repo, _ = repo.NewInMemory(wallclock.SystemClock{})
	} else {
		pool, err := getPgxpool(ctx, cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		version, err := pg.RunMigrations(ctx, pool)
		if err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			pool.Close()
			return fmt.Errorf("can't run migrations: %w", err)
		}
		conn := pg.New(pool)
		a.pool = pool
		a.onClose(pool.Close)
		a.schemaVersion = version
		a.repo = repo.New(conn, pg.NewTXManager(pool))
		pinger = conn
	}

	var sink events.Sink = events.LogSink{}
	if cfg.BroadcastURL != "" {
		webhook := events.NewWebhookSink(cfg.BroadcastURL, clients.NewHTTPClient(cfg.BroadcastTimeout), cfg.BroadcastQueue)
		a.onClose(webhook.Close)
		sink = events.Multi{sink, webhook}
	}

	a.cfg = cfg
	a.clock = clock
	a.srv = service.New(a.repo, service.Options{
		JWTSecret:      cfg.JWTSecret,
		InitialBalance: initialBalance,
		Sink:           sink,
		Clock:          clock,
	})
	a.api = handlers.New(a.srv, clock, pinger)
	a.runner = jobs.NewRunner(
		jobs.Config{
			Concurrency:   cfg.JobConcurrency,
			PollInterval:  cfg.JobPoll,
			SweepInterval: cfg.SweepInterval,
		},
		a.repo.JobRepo,
		a.srv.Scheduler,
		clock,
		jobs.Handlers(a.srv.SettlementService, a.srv.NotifyService),
	)
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startJobRunner runs lifecycle jobs until ctx ends.
func (a *Application) startJobRunner(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.runner.Run(ctx); err != nil {
			a.errCh <- fmt.Errorf("job runner exited with error: %w", err)
		}
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	// Both the HTTP shutdown and the runner are done before the store goes away.
	a.wg.Wait()
	a.Close()
	close(a.errCh)
	wg.Wait()

	return appErr
}

// Open wires the application for one-off commands without starting the
// HTTP server or the job runner. Close releases it.
func Open(ctx context.Context, cfg *config.Config) (*Application, error) {
	a := New()
	if err := a.build(ctx, cfg); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Application) Services() *service.Services { return a.srv }

func (a *Application) Runner() *jobs.Runner { return a.runner }

// SchemaVersion is the migration version of the database, zero on the memory ledger.
func (a *Application) SchemaVersion() int64 { return a.schemaVersion }

func (a *Application) onClose(fn func()) {
	a.closers = append(a.closers, fn)
}

// Close releases resources in reverse order of acquisition. It is safe to call twice.
func (a *Application) Close() {
	closers := a.closers
	a.closers = nil
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

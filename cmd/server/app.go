package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	httpadapter "profile-matcher/internal/adapters/http"
	"profile-matcher/internal/adapters/storage/postgres"
	"profile-matcher/internal/adapters/storage/sqlite"
	"profile-matcher/internal/config"
	"profile-matcher/internal/core/ports"
	"profile-matcher/internal/core/services/clientconfig"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readHeaderTimeout = 5 * time.Second

type migrator interface {
	Migrate(ctx context.Context) error
}

type App struct {
	config        *config.Config
	store         ports.Repository
	httpServer    *http.Server
	metricsServer *http.Server
	httpAddr      string
	serverErrs    chan error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	service := clientconfig.NewService(clientconfig.Dependencies{
		Players:   store,
		Campaigns: store,
		Seeder:    store,
	})

	router := httpadapter.NewRouter(httpadapter.NewHandler(service), httpadapter.Options{
		RequestTimeout:     cfg.RequestTimeout,
		EnableSeedEndpoint: cfg.EnableSeedEndpoint,
	})

	return &App{
		config:     cfg,
		store:      store,
		serverErrs: make(chan error, 2),
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (ports.Repository, error) {
	driver, dsn, err := cfg.Database()
	if err != nil {
		return nil, err
	}

	var store ports.Repository
	switch driver {
	case config.DriverPostgres:
		s, err := postgres.NewPostgresStore(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		store = s
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		store = s
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
	slog.Info("Connected to storage", "driver", driver)

	if cfg.AutoMigrate {
		if m, ok := store.(migrator); ok {
			if err := m.Migrate(ctx); err != nil {
				store.Close()
				return nil, fmt.Errorf("migrate %s store: %w", driver, err)
			}
			slog.Info("Schema migrations applied", "driver", driver)
		}
	}

	return store, nil
}

// Run binds the API listener and serves in the background.
func (a *App) Run() error {
	a.startMetricsServer()

	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.httpServer.Addr, err)
	}
	a.httpAddr = ln.Addr().String()

	go func() {
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.reportServerError(fmt.Errorf("http server: %w", err))
		}
	}()

	slog.Info("Profile matcher is online", "addr", a.httpAddr)
	return nil
}

func (a *App) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		slog.Info("Starting metrics server", "addr", a.config.MetricsAddr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.reportServerError(fmt.Errorf("metrics server: %w", err))
		}
	}()
}

// ServerErrors delivers fatal errors from the API and metrics servers.
func (a *App) ServerErrors() <-chan error {
	return a.serverErrs
}

func (a *App) reportServerError(err error) {
	select {
	case a.serverErrs <- err:
	default:
		slog.Error("Server error dropped", "error", err)
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	var errs []error

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if a.store != nil {
		a.store.Close()
	}

	return errors.Join(errs...)
}

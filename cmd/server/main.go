// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/taskboard-api/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskboard-api/internal/adapters/sqlite"

	"github.com/jsamuelsen11/taskboard-api/internal/app"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/config"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/health"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
	"github.com/jsamuelsen11/taskboard-api/internal/txn"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeOpenTimeout      = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// Store: open and migrate before serving traffic.
	storeCtx, storeCancel := context.WithTimeout(ctx, storeOpenTimeout)
	defer storeCancel()

	store, err := sqlite.Open(storeCtx, sqlite.Config{
		Path:            cfg.Store.Path,
		MaxOpenConns:    cfg.Store.MaxOpenConns,
		MaxIdleConns:    cfg.Store.MaxIdleConns,
		ConnMaxLifetime: cfg.Store.ConnMaxLifetime,
		BusyTimeout:     cfg.Store.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	if err := store.ApplyMigrations(storeCtx); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, store)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.BoardRepository, error) {
		return sqlite.NewBoardRepo(do.MustInvoke[*sqlite.Store](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TaskRepository, error) {
		return sqlite.NewTaskRepo(do.MustInvoke[*sqlite.Store](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TagRepository, error) {
		return sqlite.NewTagRepo(do.MustInvoke[*sqlite.Store](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.DependencyRepository, error) {
		return sqlite.NewDependencyRepo(do.MustInvoke[*sqlite.Store](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.NoteRepository, error) {
		return sqlite.NewNoteRepo(do.MustInvoke[*sqlite.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*txn.Manager, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		opts := []txn.ManagerOption{
			txn.WithRetryBackoff(cfg.Transaction.RetryBackoff),
		}
		if metrics != nil {
			opts = append(opts, txn.WithMetrics(metrics))
		}
		if cfg.Transaction.CircuitBreaker.Enabled {
			opts = append(opts, txn.WithBreaker("store",
				cfg.Transaction.CircuitBreaker.MaxFailures,
				cfg.Transaction.CircuitBreaker.Timeout,
			))
		}
		return txn.NewManager(store, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (*txn.Coordinator, error) {
		return txn.NewCoordinator(
			do.MustInvoke[*txn.Manager](i),
			do.MustInvoke[ports.BoardRepository](i),
			do.MustInvoke[ports.TaskRepository](i),
			do.MustInvoke[ports.TagRepository](i),
			do.MustInvoke[ports.DependencyRepository](i),
			do.MustInvoke[ports.NoteRepository](i),
			logger,
			txn.WithDefaults(txn.Options{
				Timeout:       cfg.Transaction.Timeout,
				RetryAttempts: cfg.Transaction.RetryAttempts,
				AutoRollback:  true,
			}),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		return app.NewBoardService(
			do.MustInvoke[*txn.Coordinator](i),
			do.MustInvoke[ports.BoardRepository](i),
			do.MustInvoke[ports.TaskRepository](i),
			do.MustInvoke[ports.TagRepository](i),
			do.MustInvoke[ports.DependencyRepository](i),
			do.MustInvoke[ports.NoteRepository](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		return handlers.NewBoardHandler(do.MustInvoke[ports.BoardService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		return handlers.NewTaskHandler(do.MustInvoke[ports.BoardService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TransactionHandler, error) {
		return handlers.NewTransactionHandler(do.MustInvoke[*txn.Coordinator](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		boardH := do.MustInvoke[*handlers.BoardHandler](i)
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		txnH := do.MustInvoke[*handlers.TransactionHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		middlewares := []func(nethttp.Handler) nethttp.Handler{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		}
		if cfg.RateLimit.Enabled {
			middlewares = append(middlewares,
				middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}

		return adapthttp.NewRouter(boardH, taskH, txnH, healthH, middlewares...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

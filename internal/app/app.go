package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"deal-analytics/internal/aggregators"
	"deal-analytics/internal/clocks"
	"deal-analytics/internal/events"
	internalhttp "deal-analytics/internal/http"
	"deal-analytics/internal/ingestors"
	"deal-analytics/internal/shared/configs"
	"deal-analytics/internal/shared/loggers"
	"deal-analytics/internal/statistics"
	"deal-analytics/internal/stores"
	"deal-analytics/internal/streams"
)

const appName = "deal-analytics"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	eventStore           stores.EventStore
	webhookEventConsumer streams.WebhookEventConsumer
	backgroundCancel     context.CancelFunc
}

// NewLogger builds the application logger from config.
func NewLogger(config *configs.Config) (loggers.Logger, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return appLogger, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return appLogger.With().Str(loggers.FieldApp, appName).Logger(), nil
}

// OpenEventStore connects to the configured database and migrates its schema.
func OpenEventStore(ctx context.Context, config *configs.Config) (stores.EventStore, error) {
	eventStore, err := stores.Open(ctx, stores.Options{
		Driver:           config.Database.Driver,
		DSN:              config.Database.DSN,
		OperationTimeout: time.Duration(config.Database.OperationTimeout) * time.Second,
		MaxOpenConns:     config.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event store: %w", err)
	}
	return eventStore, nil
}

// New creates and initializes a new App instance.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := NewLogger(config)
	if err != nil {
		return nil, err
	}

	clock, err := clocks.NewBusinessClock(config.BusinessClock.Timezone, config.BusinessClock.Cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize business clock: %w", err)
	}

	eventStore, err := OpenEventStore(ctx, config)
	if err != nil {
		return nil, err
	}

	// Initialize ingestion queue
	webhookEventQueue := streams.NewBoundedQueue[events.WebhookEvent](config.Queue.Capacity)

	// Initialize aggregation service
	rawEventBuilder := aggregators.NewRawEventBuilder(clock)
	aggregationService := aggregators.NewAggregationService(rawEventBuilder, eventStore, aggregators.RetryPolicy{
		MaxAttempts: config.Worker.MaxAttempts,
		Backoff:     time.Duration(config.Worker.RetryBackoffMs) * time.Millisecond,
	})
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	webhookEventConsumer := streams.NewWebhookEventConsumer(
		webhookEventQueue,
		aggregationService,
		time.Duration(config.Queue.DequeueTimeoutMs)*time.Millisecond,
		consumerLogger,
	)

	// Initialize ingestion service
	webhookEventProducer := streams.NewWebhookEventProducer(webhookEventQueue)
	payloadDescriber := ingestors.NewPayloadDescriber()
	ingestionService := ingestors.NewIngestionService(
		payloadDescriber,
		webhookEventProducer,
		aggregationService,
		clock,
		config.Ingestion.Mode,
	)

	// Initialize statistics service
	statisticsService := statistics.NewStatisticsService(eventStore, clock)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, statisticsService, webhookEventProducer, eventStore, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:               config,
		appLogger:            appLogger,
		server:               server,
		eventStore:           eventStore,
		webhookEventConsumer: webhookEventConsumer,
	}, nil
}

// Handler exposes the HTTP router, mainly for in-process tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// StartConsumer launches the aggregation worker. It must return before Shutdown
// can be called, so callers run it on the goroutine that later shuts down.
func (app *App) StartConsumer() {
	backgroundCtx, backgroundCancel := context.WithCancel(context.Background())
	app.backgroundCancel = backgroundCancel
	app.webhookEventConsumer.Start(backgroundCtx)
}

// Serve runs the HTTP server in a blocking manner. The consumer must already be started.
func (app *App) Serve() error {
	app.appLogger.Info().
		Msgf("Starting %s on port %d (log_level=%s, driver=%s, ingestion_mode=%s, queue_capacity=%d)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Database.Driver,
			app.config.Ingestion.Mode,
			app.config.Queue.Capacity)

	return app.server.ListenAndServe()
}

// Start starts the aggregation worker and then the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.StartConsumer()
	return app.Serve()
}

// Shutdown gracefully shuts down the application. Events already queued are
// drained until ctx expires; whatever is left after that is lost.
func (app *App) Shutdown(ctx context.Context) error {
	var errs []error

	// 1) Shutdown server, no new webhooks are accepted after this
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown failed: %w", err))
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Drain the queue and wait for the worker
	if err := app.webhookEventConsumer.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("consumer stop failed: %w", err))
	}
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Background consumer stopped")

	// 3) Close the store once nothing writes to it anymore
	if err := app.eventStore.Close(); err != nil {
		errs = append(errs, fmt.Errorf("event store close failed: %w", err))
	}
	app.appLogger.Info().Msg("Event store closed")

	return errors.Join(errs...)
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"post_syncer/internal/config"
	"post_syncer/internal/domain"
	"post_syncer/internal/notifier"
	"post_syncer/internal/publisher"
	"post_syncer/internal/scheduler"
	"post_syncer/internal/server"
	"post_syncer/internal/service"
	"post_syncer/internal/source/meta"
	"post_syncer/internal/storage/postgres"
	"post_syncer/internal/target/wordpress"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	events, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer events.Close()

	tenantStore := postgres.NewTenantStore(db)
	recordStore := postgres.NewSyncRecordStore(db)
	txManager := postgres.NewTransactionManager(db)

	metaClient := meta.New(cfg.Meta, logger)
	slack := notifier.NewSlack(cfg.Slack, logger)
	targets := wordpress.NewFactory(cfg.Batch.OperatorEmail, cfg.Meta.Timeout, logger)

	batch := service.NewBatchService(
		tenantStore,
		recordStore,
		metaClient,
		targetFactory{targets},
		txManager,
		slack,
		events,
		logger,
		cfg.Batch,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	sched := scheduler.NewScheduler(batch, cfg.Batch.Interval, cfg.Batch.RunTimeout, logger)
	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(batch, logger),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("starting post syncer",
		"addr", cfg.Server.Addr,
		"interval", cfg.Batch.Interval,
		"workers", cfg.Batch.Workers,
	)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// targetFactory adapts the concrete per-tenant client constructor to the
// service-layer interface.
type targetFactory struct {
	factory *wordpress.Factory
}

func (f targetFactory) ForTenant(tenant *domain.Tenant) service.TargetPublisher {
	return f.factory.ForTenant(tenant)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/config"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/publisher"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/scheduler"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/service"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/source/openalex"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/storage/postgres"
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

	// The publisher is optional; without a broker URL work events are
	// simply not announced.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	} else {
		logger.Info("work-event publisher disabled")
	}

	workStore := postgres.NewWorkStore(db)
	outcomeStore := postgres.NewOutcomeStore(db)
	configStore := postgres.NewConfigStore(db)

	catalog := openalex.New(openalex.Config{
		BaseURL:           cfg.API.BaseURL,
		Mailto:            cfg.API.Mailto,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
	}, logger)

	upserter := service.NewUpserter(workStore, logger)
	harvester := service.NewHarvester(catalog, workStore, upserter, pub, logger, cfg.Harvest.BatchSize)
	schedule := service.NewSchedule(configStore, outcomeStore, logger)
	runner := service.NewRunner(schedule, harvester, catalog, outcomeStore, logger)

	sched := scheduler.NewScheduler(runner, cfg.Harvest.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting works harvester",
		"interval", cfg.Harvest.Interval,
		"batch_size", cfg.Harvest.BatchSize,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
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

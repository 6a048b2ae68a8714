package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Raymond9734/parking-customers-backend/internal/config"
	"github.com/Raymond9734/parking-customers-backend/internal/export"
	"github.com/Raymond9734/parking-customers-backend/internal/logging"
	"github.com/Raymond9734/parking-customers-backend/internal/models"
	"github.com/Raymond9734/parking-customers-backend/internal/queue"
	"github.com/Raymond9734/parking-customers-backend/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	logger.Info("starting export worker")

	if !cfg.Queue.Enabled() {
		logger.Error("REDIS_URL is required for the export worker")
		os.Exit(1)
	}

	queueClient, err := queue.NewRedisClient(queue.RedisConfig{
		URL:       cfg.Queue.RedisURL,
		QueueName: cfg.Queue.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer queueClient.Close()

	sink, err := worker.NewDirSink(cfg.Export.Dir)
	if err != nil {
		logger.Error("failed to prepare export directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	processor := worker.NewExportProcessor(
		sink,
		export.Options{PDFFontPath: cfg.Export.PDFFontPath},
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumerErrors := make(chan error, 1)
	go func() {
		logger.Info("starting export consumer",
			slog.String("export_dir", cfg.Export.Dir),
			slog.Int("concurrency", cfg.Worker.Concurrency),
		)

		handler := func(ctx context.Context, job *models.ExportJob) error {
			return processor.Process(ctx, job)
		}

		consumerErrors <- queueClient.Consume(ctx, handler, cfg.Worker.Concurrency)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-consumerErrors:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("consumer error", slog.String("error", err.Error()))
			os.Exit(1)
		}

	case sig := <-quit:
		logger.Info("shutting down worker", slog.String("signal", sig.String()))

		cancel()

		// Consume returns once in-flight renders finish
		select {
		case <-consumerErrors:
		case <-time.After(cfg.API.ShutdownTimeout):
			logger.Warn("timed out waiting for in-flight exports")
		}

		logger.Info("worker stopped gracefully")
	}
}

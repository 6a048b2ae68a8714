package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Raymond9734/parking-customers-backend/internal/config"
	"github.com/Raymond9734/parking-customers-backend/internal/export"
	"github.com/Raymond9734/parking-customers-backend/internal/handler"
	"github.com/Raymond9734/parking-customers-backend/internal/logging"
	"github.com/Raymond9734/parking-customers-backend/internal/queue"
	"github.com/Raymond9734/parking-customers-backend/internal/repository"
	"github.com/Raymond9734/parking-customers-backend/internal/service"
)

func main() {
	// A missing .env is fine; the process environment still applies
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	logger.Info("starting parking customers API server")

	// The export queue is optional; without it only direct downloads work
	var queueClient queue.Client
	if cfg.Queue.Enabled() {
		queueClient, err = queue.NewRedisClient(queue.RedisConfig{
			URL:       cfg.Queue.RedisURL,
			QueueName: cfg.Queue.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer queueClient.Close()
	} else {
		logger.Warn("REDIS_URL not set, background exports disabled")
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository()

	// Initialize services
	expirySvc := service.NewExpiryService()
	collectionSvc := service.NewCollectionService(cfg.Export.DefaultLanguage)
	customerSvc := service.NewCustomerService(customerRepo, expirySvc, collectionSvc, logger)
	exportSvc := service.NewExportService(
		customerSvc,
		collectionSvc,
		queueClient,
		export.Options{PDFFontPath: cfg.Export.PDFFontPath},
		cfg.Export.DefaultLanguage,
		logger,
	)
	importSvc := service.NewImportService(customerSvc, collectionSvc, logger)

	router := handler.NewRouter(handler.RouterConfig{
		Customers:      handler.NewCustomerHandler(customerSvc, logger),
		Exports:        handler.NewExportHandler(exportSvc, importSvc, logger),
		Health:         handler.NewHealthHandler(queueClient, logger),
		AllowedOrigins: cfg.API.AllowedOrigins,
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			return
		}

		logger.Info("server stopped gracefully")
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/bank-transfers/internal/config"
	"github.com/benx421/bank-transfers/internal/db"
	"github.com/benx421/bank-transfers/internal/handlers"
	"github.com/benx421/bank-transfers/internal/middleware"
	"github.com/benx421/bank-transfers/internal/notify"
	"github.com/benx421/bank-transfers/internal/repository"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting bank transfers api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"currency", cfg.App.TransferCurrency,
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	var idempotency middleware.IdempotencyStore
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("invalid redis url", "error", err)
			os.Exit(1)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable at startup, idempotency keys fail open", "error", err)
		}
		idempotency = middleware.NewRedisIdempotencyStore(client, cfg.Redis.IdempotencyTTL)
	} else {
		logger.Warn("REDIS_URL not set, Idempotency-Key replays disabled")
	}

	var publisher notify.Publisher = notify.NewLogPublisher(logger)
	if cfg.Broker.URL != "" {
		amqpPublisher, err := notify.DialAMQP(cfg.Broker.URL, cfg.Broker.Exchange, logger)
		if err != nil {
			logger.Error("failed to connect to broker, notifications will only be logged", "error", err)
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
		}
	} else {
		logger.Warn("RABBITMQ_URL not set, notifications will only be logged")
	}

	notifier := notify.NewTransferNotifier(
		repository.NewUserRepository(database),
		notify.NewBreakerPublisher(publisher, notify.DefaultBreakerSettings, logger),
		notify.NewPayloadBuilder(cfg.App.FrontendURL),
		logger,
	)

	router, err := handlers.NewRouter(database, idempotency, notifier, cfg, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// in-flight notifications are bounded by the dispatch timeout
	notifier.Wait()

	logger.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http/middleware"
	"github.com/tuanvumaihuynh/inventory-pos/internal/log"
	"github.com/tuanvumaihuynh/inventory-pos/internal/relay"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/mq"
	"github.com/tuanvumaihuynh/inventory-pos/internal/telemetry"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running relay application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		Relay    config.Relay
		Kafka    config.Kafka
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
	if err != nil {
		return fmt.Errorf("error creating kafka producer: %w", err)
	}
	defer kafkaProducer.Close()

	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient)

	interruptChan := cmdutil.InterruptChan()

	svc := relay.NewService(cfg.Relay, logger, dbClient, outboxMsgRepository, kafkaProducer)
	cleanup := svc.Run(ctx)
	logger.InfoContext(ctx, "relay service started",
		slog.Any("batch_size", cfg.Relay.BatchSize),
		slog.Duration("interval", cfg.Relay.Interval),
		slog.Duration("retention", cfg.Relay.Retention),
	)

	var metricsSrv *http.Server
	if cfg.Relay.MetricsPort > 0 {
		metricsSrv = newMetricsServer(cfg.Relay.MetricsPort)
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.ErrorContext(ctx, "error serving relay metrics", slog.Any("error", err))
			}
		}()
		logger.InfoContext(ctx, "relay metrics server started", slog.String("addr", metricsSrv.Addr))
	}

	<-interruptChan

	logger.InfoContext(ctx, "relay service is shutting down")
	cleanup()

	if metricsSrv != nil {
		shutdownCtx, cancelShutdown := context.WithTimeout(ctx, 5*time.Second)
		defer cancelShutdown()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.ErrorContext(ctx, "error shutting down relay metrics server", slog.Any("error", err))
		}
	}

	logger.InfoContext(ctx, "relay service is stopped")

	return nil
}

// newMetricsServer exposes the relayed and pruned message counters.
func newMetricsServer(port uint32) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(middleware.MetricsPath, promhttp.Handler())

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tuanvumaihuynh/inventory-pos/internal/alertwatch"
	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/event"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http"
	"github.com/tuanvumaihuynh/inventory-pos/internal/log"
	"github.com/tuanvumaihuynh/inventory-pos/internal/relay"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/mq"
	"github.com/tuanvumaihuynh/inventory-pos/internal/telemetry"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/cmdutil"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running standalone application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log        config.Log
		Postgres   config.Postgres
		HTTP       config.HTTP
		Relay      config.Relay
		Kafka      config.Kafka
		Otel       config.Otel
		Sale       config.Sale
		AlertWatch config.AlertWatch
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

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

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

	kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("error creating kafka consumer: %w", err)
	}
	defer kafkaConsumer.Close()

	productRepository := repository.NewProductRepository(dbClient)
	stockMovementRepository := repository.NewStockMovementRepository(dbClient)
	saleRepository := repository.NewSaleRepository(dbClient)
	alertRepository := repository.NewAlertRepository(dbClient)
	catalogRepository := repository.NewCatalogRepository(dbClient)
	reportRepository := repository.NewReportRepository(dbClient)
	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient)

	alertService := service.NewAlertService(dbClient, productRepository, alertRepository, outboxMsgRepository)
	services := http.Services{
		Product: service.NewProductService(dbClient, v, productRepository, stockMovementRepository, alertService),
		Stock:   service.NewStockService(dbClient, v, productRepository, stockMovementRepository, alertService),
		Sale: service.NewSaleService(cfg.Sale, dbClient, v, productRepository, saleRepository,
			stockMovementRepository, outboxMsgRepository, alertService),
		Alert:   alertService,
		Catalog: service.NewCatalogService(dbClient, v, catalogRepository),
		Report:  service.NewReportService(dbClient, reportRepository, productRepository, alertRepository),
	}

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	wg.Go(func() {
		svc := event.New(logger, kafkaConsumer)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running event service: %w", err))
		}
		logger.InfoContext(ctx, "event service started")

		<-interruptChan

		logger.InfoContext(ctx, "event service is shutting down")
		cleanup()

		logger.InfoContext(ctx, "event service is stopped")
	})

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, prometheus.DefaultRegisterer, v, dbClient, services)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Go(func() {
		svc := relay.NewService(cfg.Relay, logger, dbClient, outboxMsgRepository, kafkaProducer)
		cleanup := svc.Run(ctx)
		logger.InfoContext(ctx, "relay service started")

		<-interruptChan

		logger.InfoContext(ctx, "relay service is shutting down")
		cleanup()

		logger.InfoContext(ctx, "relay service is stopped")
	})

	wg.Go(func() {
		watcher := alertwatch.New(cfg.AlertWatch, logger, alertService)
		cleanup := watcher.Run(ctx)
		logger.InfoContext(ctx, "alert watcher started")

		<-interruptChan

		logger.InfoContext(ctx, "alert watcher is shutting down")
		cleanup()

		logger.InfoContext(ctx, "alert watcher is stopped")
	})

	wg.Wait()

	return nil
}

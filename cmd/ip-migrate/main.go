package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/log"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/seed"
	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running migrate application: %v\n", err)
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
		Seed     config.Seed
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	logger.InfoContext(ctx, "starting database migration")

	if err := db.Migrate(ctx, pgxPool, logger); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	logger.InfoContext(ctx, "database migration completed successfully")

	if !cfg.Seed.SampleData {
		return nil
	}

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	dbClient := db.NewClient(pgxPool)
	productRepository := repository.NewProductRepository(dbClient)
	stockMovementRepository := repository.NewStockMovementRepository(dbClient)
	alertRepository := repository.NewAlertRepository(dbClient)
	catalogRepository := repository.NewCatalogRepository(dbClient)
	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient)

	alertService := service.NewAlertService(dbClient, productRepository, alertRepository, outboxMsgRepository)
	productService := service.NewProductService(dbClient, v, productRepository, stockMovementRepository, alertService)
	catalogService := service.NewCatalogService(dbClient, v, catalogRepository)

	if _, err := seed.New(logger, catalogService, productService).Run(ctx); err != nil {
		return fmt.Errorf("error seeding sample data: %w", err)
	}

	return nil
}

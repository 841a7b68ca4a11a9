package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vsinha/catalog/pkg/application/dto"
	"github.com/vsinha/catalog/pkg/application/services/catalog"
	"github.com/vsinha/catalog/pkg/infrastructure/config"
	"github.com/vsinha/catalog/pkg/infrastructure/events"
	"github.com/vsinha/catalog/pkg/infrastructure/logger"
	"github.com/vsinha/catalog/pkg/infrastructure/metrics"
	"github.com/vsinha/catalog/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/catalog/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/catalog/pkg/interfaces/cli/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	cfg := config.C()

	if err := logger.Init(logger.Config{
		Level:  cfg.Logger.Level(),
		AsJSON: cfg.Logger.AsJSON(),
		File:   cfg.Logger.File(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := events.NewInMemoryEventStore()
	recorder := metrics.NewRecorder()
	svc := catalog.NewService(
		memory.NewPartRepository(0),
		memory.NewProductRepository(0),
		catalog.WithEventStore(store),
		catalog.WithRecorder(recorder),
	)
	err := svc.Subscribe([]string{events.AllEventTypes}, events.HandlerFunc(func(c events.Change) error {
		logger.Debug(ctx, "catalog event",
			logger.String("type", c.Type),
			logger.String("stream", c.Stream),
			logger.Int("version", c.Version),
		)
		return nil
	}))
	if err != nil {
		logger.Error(ctx, "failed to subscribe to catalog events", logger.ErrorF(err))
		return err
	}

	if err := seed(ctx, svc, cfg.Catalog); err != nil {
		logger.Error(ctx, "failed to seed catalog", logger.ErrorF(err))
		fmt.Fprintf(os.Stderr, "Error: %s\n", commands.UserMessage(err))
		return err
	}

	root := commands.NewRootCommand(&commands.App{
		Service:  svc,
		Exporter: csv.NewExporter(),
		Metrics:  recorder,
		Format:   cfg.Catalog.OutputFormat(),
	})
	return commands.Execute(ctx, root, os.Stderr)
}

// seed loads the configured CSV files, or the demo data when none are set
func seed(ctx context.Context, svc *catalog.Service, cfg config.Catalog) error {
	if cfg.PartsCSV() == "" && cfg.ProductsCSV() == "" {
		if !cfg.SeedDefaults() {
			return nil
		}
		return svc.SeedDefaults(ctx)
	}

	loader := csv.NewLoader()
	var err error
	var parts []dto.PartSeed
	if cfg.PartsCSV() != "" {
		if parts, err = loader.LoadPartsFile(cfg.PartsCSV()); err != nil {
			return err
		}
	}
	var products []dto.ProductSeed
	if cfg.ProductsCSV() != "" {
		if products, err = loader.LoadProductsFile(cfg.ProductsCSV()); err != nil {
			return err
		}
	}

	logger.Info(ctx, "seeding catalog from CSV",
		logger.Int("parts", len(parts)),
		logger.Int("products", len(products)),
	)
	return svc.Seed(ctx, parts, products)
}

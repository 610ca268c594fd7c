package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"github.com/pricewatch/backend/config"
	"github.com/pricewatch/backend/internal/domain"
	"github.com/pricewatch/backend/internal/infrastructure/basket"
	"github.com/pricewatch/backend/internal/infrastructure/pricestore"
	"github.com/pricewatch/backend/internal/logger"
	"github.com/pricewatch/backend/internal/usecase"
)

// One-shot runner: reconcile the current scraper output and write the
// comparison artifact, the same computation the server performs on
// refresh.
func main() {
	basketPath := flag.String("basket", "", "shopping list file (overrides config)")
	pricesDir := flag.String("prices", "", "directory with prices_<retailer>.json files (overrides config)")
	outputPath := flag.String("out", "", "comparison artifact path (overrides config)")
	mode := flag.String("mode", "", "aggregation mode: all-coverage or common-basket (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	if *basketPath != "" {
		cfg.Store.BasketPath = *basketPath
	}
	if *pricesDir != "" {
		cfg.Store.PricesDir = *pricesDir
	}
	if *outputPath != "" {
		cfg.Store.OutputPath = *outputPath
	}
	if *mode != "" {
		cfg.Engine.Mode = *mode
	}

	log, err := logger.New(cfg.Server.Environment, cfg.Engine.DebugMatching)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	engine, err := usecase.NewEngine(usecase.EngineConfig{
		Retailers:      cfg.Retailers,
		Mode:           domain.Mode(cfg.Engine.Mode),
		RadicalLength:  cfg.Engine.RadicalLength,
		MinTokenLength: cfg.Engine.MinTokenLength,
		Rules:          cfg.Rules,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("failed to build engine", zap.Error(err))
	}

	store := pricestore.NewStore(cfg.Store.PricesDir, cfg.Store.OutputPath, log)
	service := usecase.NewComparisonService(
		basket.NewLoader(cfg.Store.BasketPath),
		store,
		store,
		engine,
		log,
	)

	cmp, err := service.Refresh(context.Background())
	if err != nil {
		log.Fatal("comparison failed", zap.Error(err))
	}

	for rank, t := range cmp.Totals {
		log.Info("ranked retailer",
			zap.Int("rank", rank+1),
			zap.String("retailer", t.RetailerName),
			zap.Float64("total_unit_price", t.SumUnitPrice),
			zap.Int("items_counted", t.ItemsCounted),
			zap.Int("items_found_raw", t.ItemsFoundRaw),
		)
	}
	log.Info("comparison written",
		zap.String("path", cfg.Store.OutputPath),
		zap.Int("rows", len(cmp.Rows)),
		zap.Int("basket_size", cmp.BasketSize),
	)
}

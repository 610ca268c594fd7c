package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pricewatch/backend/config"
	httpDelivery "github.com/pricewatch/backend/internal/delivery/http"
	"github.com/pricewatch/backend/internal/domain"
	"github.com/pricewatch/backend/internal/infrastructure/basket"
	"github.com/pricewatch/backend/internal/infrastructure/pricestore"
	"github.com/pricewatch/backend/internal/logger"
	"github.com/pricewatch/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.Server.Environment, cfg.Engine.DebugMatching)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting pricewatch backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Engine.Mode),
		zap.Int("retailers", len(cfg.Retailers)),
	)

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

	// Compute an initial comparison so the API has something to serve.
	// Sparse or missing price files are fine; a broken shopping list is
	// the one input problem worth dying for.
	if _, err := service.Refresh(context.Background()); err != nil {
		log.Fatal("initial comparison failed", zap.Error(err))
	}

	handler := httpDelivery.NewHandler(service)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

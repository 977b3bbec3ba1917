package main

import (
	"context"
	"fmt"
	"log"

	"github.com/paniermalin/backend/config"
	httpDelivery "github.com/paniermalin/backend/internal/delivery/http"
	"github.com/paniermalin/backend/internal/infrastructure/cache"
	"github.com/paniermalin/backend/internal/infrastructure/catalog"
	"github.com/paniermalin/backend/internal/knowledge"
	"github.com/paniermalin/backend/internal/logger"
	"github.com/paniermalin/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	sugar := zapLogger.Sugar()

	sugar.Infow("starting paniermalin backend",
		"version", "1.0.0",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port)

	// Infrastructure
	store, err := catalog.Open(cfg.Catalog.Path, cfg.Catalog.PreferredSource)
	if err != nil {
		sugar.Fatalw("failed to open catalog store", "path", cfg.Catalog.Path, "error", err)
	}
	defer func() { _ = store.Close() }()

	if cfg.Catalog.SeedOnStart {
		seeded, err := store.SeedIfEmpty(context.Background())
		if err != nil {
			sugar.Fatalw("failed to seed catalog", "error", err)
		}
		if seeded > 0 {
			sugar.Infow("seeded starter catalog", "products", seeded)
		}
	}

	memoryCache := cache.NewMemoryCache()
	kb := knowledge.New()
	sugar.Infow("knowledge base loaded", "ingredients", kb.Size())

	// Usecase layer
	parser := usecase.NewParser(kb)
	matcher := usecase.NewMatcher(store, kb, usecase.MatcherConfig{
		MinScore:        cfg.Matching.MinScore,
		PreferredSource: cfg.Catalog.PreferredSource,
		SearchBaseURL:   cfg.Catalog.SearchBaseURL,
		EnableFuzzy:     cfg.Matching.EnableFuzzy,
	}, sugar)
	shopping := usecase.NewShoppingService(parser, matcher, memoryCache, usecase.ShoppingConfig{
		MinScore:          cfg.Matching.MinScore,
		FallbackPriceCHF:  cfg.Shopping.FallbackPriceCHF,
		SkipCommonStaples: cfg.Shopping.SkipCommonStaples,
		PreferredSource:   cfg.Catalog.PreferredSource,
		CacheTTL:          cfg.Cache.TTL,
	}, sugar)

	sugar.Infow("matching configured",
		"min_score", cfg.Matching.MinScore,
		"fuzzy", cfg.Matching.EnableFuzzy,
		"preferred_source", cfg.Catalog.PreferredSource)

	// Delivery
	handler := httpDelivery.NewHandler(shopping, parser, sugar)
	router := httpDelivery.SetupRouter(cfg, handler, sugar)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	sugar.Infow("server listening", "addr", addr)

	if err := router.Run(addr); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

package main // Entry point for the text-analysis service

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/aura-journal/internal/cache"
	"github.com/iliyamo/aura-journal/internal/config"
	"github.com/iliyamo/aura-journal/internal/handler"
	"github.com/iliyamo/aura-journal/internal/nlp"
	"github.com/iliyamo/aura-journal/internal/router"
)

func main() {
	cfg := config.Load()

	analyzer, err := nlp.NewGCPAnalyzer(context.Background())
	if err != nil {
		log.Fatalf("create analyzer: %v", err)
	}
	defer func() { _ = analyzer.Close() }()

	// Nil client -> nil cache -> every request goes to the provider.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, analysis cache disabled")
	}
	analysisCache := cache.New(rdb, cfg.AnalysisCacheTTL)

	e := echo.New()
	e.HideBanner = true
	router.RegisterAnalyze(e, handler.NewAnalyzeHandler(analyzer, analysisCache))

	addr := ":" + cfg.Port
	log.Printf("nlp agent listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

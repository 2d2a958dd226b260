package main // Entry point for the journal-entry ingestor service

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/aura-journal/internal/config"
	"github.com/iliyamo/aura-journal/internal/database"
	"github.com/iliyamo/aura-journal/internal/handler"
	"github.com/iliyamo/aura-journal/internal/nlp"
	"github.com/iliyamo/aura-journal/internal/queue"
	"github.com/iliyamo/aura-journal/internal/repository"
	"github.com/iliyamo/aura-journal/internal/router"
	"github.com/iliyamo/aura-journal/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	mongoClient, err := database.OpenMongo(cfg.MongoURI)
	if err != nil {
		log.Fatalf("open mongodb: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	entries := service.NewEntryService(
		repository.NewEntryRepo(db),
		nlp.NewClient(cfg.NLPAgentURL),
		repository.NewInsightRepo(mongoClient.Database(cfg.MongoDB)),
		nil, // default broker publisher
	)

	// The journal consumer tails entry.created alongside the HTTP surface.
	go queue.StartEntryConsumer()

	e := echo.New()
	e.HideBanner = true
	router.RegisterEntries(e, handler.NewEntryHandler(entries), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("entry ingestor listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

package main // Entry point for the authentication service

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/aura-journal/internal/config"
	"github.com/iliyamo/aura-journal/internal/database"
	"github.com/iliyamo/aura-journal/internal/handler"
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

	auth := service.NewAuthService(service.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		AccessTTL:  time.Duration(cfg.AccessTTLMin) * time.Minute,
		RefreshTTL: time.Duration(cfg.RefreshTTLDays) * 24 * time.Hour,
		BcryptCost: cfg.BcryptCost,
	}, repository.NewUserRepo(db), repository.NewSessionRepo(db))

	e := echo.New()
	e.HideBanner = true
	router.RegisterAuth(e, handler.NewAuthHandler(auth))

	addr := ":" + cfg.Port
	log.Printf("auth service listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

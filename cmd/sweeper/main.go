package main // Periodic job that deactivates expired sessions

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/iliyamo/aura-journal/internal/config"
	"github.com/iliyamo/aura-journal/internal/database"
	"github.com/iliyamo/aura-journal/internal/repository"
)

// Session validation already checks expiry lazily; this job exists so the
// user_sessions table does not accumulate stale active rows between logins.
func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	sessions := repository.NewSessionRepo(db)

	interval := time.Hour
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			interval = d
		}
	}

	sweep(sessions)
	if *once {
		return
	}
	for range time.Tick(interval) {
		sweep(sessions)
	}
}

func sweep(sessions *repository.SessionRepo) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := sessions.SweepExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("sweeper: sweep failed: %v", err)
		return
	}
	log.Printf("sweeper: deactivated %d expired sessions", n)
}

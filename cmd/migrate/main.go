package main // Applies schema migrations from the migrations directory

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/iliyamo/aura-journal/internal/config"
)

func main() {
	var (
		dir  = flag.String("dir", "migrations", "path to migration files")
		down = flag.Bool("down", false, "roll back one migration instead of migrating up")
	)
	flag.Parse()

	cfg := config.Load()

	auth := cfg.DBUser
	if cfg.DBPass != "" {
		auth = fmt.Sprintf("%s:%s", cfg.DBUser, cfg.DBPass)
	}
	dsn := fmt.Sprintf("mysql://%s@tcp(%s:%s)/%s", auth, cfg.DBHost, cfg.DBPort, cfg.DBName)

	m, err := migrate.New("file://"+*dir, dsn)
	if err != nil {
		log.Fatalf("init migrations: %v", err)
	}
	defer m.Close()

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("migrations: nothing to do")
		return
	}
	if err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
	log.Printf("migrations applied")
}

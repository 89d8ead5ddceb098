package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/shiftwise/timeclock/internal/config"
	"github.com/shiftwise/timeclock/internal/httpserver"
	"github.com/shiftwise/timeclock/internal/store"
)

// main boots the service: .env → config → DB → schema/seed → HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.DBURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Ensure tables exist and the example employees are seeded, so a fresh
	// database is usable immediately.
	if err := db.EnsureSchema(context.Background()); err != nil {
		log.Fatal(err)
	}

	router := httpserver.NewRouter(cfg, db)

	log.Printf("server started on %s (%s mode)", cfg.Addr, cfg.Mode)
	log.Fatal(router.Run(cfg.Addr))
}

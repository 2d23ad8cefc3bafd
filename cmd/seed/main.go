package main

import (
	"context"
	"log"

	"github.com/harentsoaR/hospital-seed/internal/config"
	"github.com/harentsoaR/hospital-seed/internal/seed"
	"github.com/harentsoaR/hospital-seed/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("MONGO_URL: %s", cfg.RedactedMongoURL())
	log.Printf("DB_NAME: %s", cfg.DBName)

	// --- Database Connection ---
	ctx := context.Background()
	st, err := store.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer st.Close(ctx)

	// --- Seed ---
	seeder := seed.New(st, seed.WithBcryptCost(cfg.BcryptCost))
	if _, err := seeder.Run(ctx); err != nil {
		st.Close(ctx)
		log.Fatalf("Seeding failed: %v", err)
	}
	seed.LogCredentials()

	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is NOT SET, skipping admin token.")
		return
	}
	token, err := seed.AdminToken(ctx, st, cfg.JWTSecret)
	if err != nil {
		log.Printf("Could not generate admin token: %v", err)
		return
	}
	log.Printf("Admin bearer token (24h): %s", token)
}

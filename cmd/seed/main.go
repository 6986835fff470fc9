// Command seed loads a demo user and workspace with sample marketing data.
package main

import (
	"context"
	"log"
	"time"

	"github.com/sagestone/sagestone/config"
	"github.com/sagestone/sagestone/internal/database"
	"github.com/sagestone/sagestone/pkg/crypto"
	"github.com/sagestone/sagestone/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)

	if !cfg.Database.IsConfigured() {
		appLogger.Fatal("DATABASE_URL is not set")
	}

	db, err := database.Open(&cfg.Database, nil)
	if err != nil {
		appLogger.WithField("error", err.Error()).Fatal("Failed to open database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Ping(ctx, db, 5*time.Second); err != nil {
		appLogger.WithField("error", err.Error()).Fatal("Failed to connect to database")
	}

	if err := database.InitializeDatabase(ctx, db, cfg.Database.AdminEmail); err != nil {
		appLogger.WithField("error", err.Error()).Fatal("Failed to initialize schema")
	}

	seeder := NewSeeder(db, crypto.NewPasswordHasher(crypto.DefaultPasswordCost), appLogger)
	if err := seeder.Run(ctx); err != nil {
		appLogger.WithField("error", err.Error()).Fatal("Failed to seed demo data")
	}

	appLogger.WithField("email", DemoEmail).Info("Log in with the demo account")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"careassist/internal/assistant"
	"careassist/internal/config"
	"careassist/internal/db"
	"careassist/internal/fallback"
	"careassist/internal/handlers"
	"careassist/internal/jobs"
	"careassist/internal/metrics"
	"careassist/internal/rules"
	"careassist/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Load rule sets
	rulesCfg, err := config.LoadRulesConfig(cfg.RulesFile)
	if err != nil {
		log.Fatalf("Failed to load rules file: %v", err)
	}
	healthcare, general, err := rules.FromConfig(rulesCfg)
	if err != nil {
		log.Fatalf("Invalid rules: %v", err)
	}
	if rulesCfg != nil {
		log.Printf("Loaded rules from %s", cfg.RulesFile)
	}
	log.Printf("Rule sets ready (%s: %d terms, %s: %d terms)",
		healthcare.Name(), healthcare.Len(), general.Name(), general.Len())

	// Initialize database (optional)
	var pinger handlers.Pinger
	var store metrics.HitStore
	if cfg.MetricsEnabled() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")

		pinger = database
		store = database
	} else {
		log.Println("Rule hit persistence is disabled. Set DATABASE_URL to enable.")
	}
	metrics.Init(store)

	// Fallback responder
	responder, err := fallback.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create fallback responder: %v", err)
	}
	log.Printf("Fallback responder: %s", responder.Name())

	if warmer, ok := responder.(jobs.Warmer); ok && cfg.WarmupInterval > 0 {
		go jobs.NewWarmup(warmer, cfg.WarmupInterval, cfg.HFTimeout).Start(ctx)
	}

	a := assistant.New(healthcare, general, responder)

	// Initialize server
	srv := server.New(cfg)
	srv.RegisterRoutes(a, pinger)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

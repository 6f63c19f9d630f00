package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"socratic/adapters/diskv"
	"socratic/adapters/memory"
	"socratic/adapters/postgres"
	"socratic/ai"
	"socratic/app"
	"socratic/internal"
	"socratic/internal/config"
	"socratic/models"
	"socratic/ports"
	"socratic/ui"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()

	store, cleanup, err := buildStore(cfg, logger)
	if err != nil {
		log.Fatalf("store initialization failed: %v", err)
	}
	defer cleanup()

	var insight ports.InsightGenerator
	aiConfig := &models.AIConfig{
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		BaseURL: cfg.AI.BaseURL,
		Timeout: cfg.AI.Timeout,
	}
	if aiConfig.Enabled() {
		insight = ai.NewInsightRequester(aiConfig)
		logger.Info("insight generation enabled - model=%s", aiConfig.Model)
	} else {
		logger.Warn("GEMINI_API_KEY not set - sessions save without AI insight")
	}

	journalService := app.NewJournalService(store, insight, logger)
	transferService := app.NewTransferService(store, logger)

	server := ui.NewServer(journalService, transferService, logger, cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func buildStore(cfg *config.Config, logger *internal.Logger) (ports.Store, func(), error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		store, err := postgres.NewStore(cfg.Store.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using postgres store")
		return store, func() { store.Close() }, nil
	case config.DriverMemory:
		logger.Warn("using in-memory store - records do not survive restarts")
		return memory.NewStore(), noop, nil
	default:
		store, err := diskv.NewStore(cfg.Store.DataDir)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using disk store - dir=%s", cfg.Store.DataDir)
		return store, noop, nil
	}
}

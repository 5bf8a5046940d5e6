package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/markusluicellas/luibot/internal/config"
	"github.com/markusluicellas/luibot/internal/database"
	"github.com/markusluicellas/luibot/internal/embedding"
	"github.com/markusluicellas/luibot/internal/handler"
	"github.com/markusluicellas/luibot/internal/llm"
	"github.com/markusluicellas/luibot/internal/messenger"
	"github.com/markusluicellas/luibot/internal/service"
	"github.com/markusluicellas/luibot/internal/store"
	"github.com/markusluicellas/luibot/internal/store/memory"
	"github.com/markusluicellas/luibot/internal/store/postgres"
)

func main() {
	// Load .env file if exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()
	ctx := context.Background()

	// Initialize vector store
	var st store.Store
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		st = postgres.NewStorage(db, cfg.EmbeddingDimensions)
	} else {
		log.Println("DATABASE_URL not set, using in-memory vector store")
		st = memory.NewStorage()
	}

	// Embedding client; a missing key surfaces per-request, not at startup
	embedder := embedding.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.EmbeddingModel, cfg.EmbeddingDimensions, cfg.RequestTimeout)

	// Generation client; the service degrades to the fallback answer without it
	var generator llm.Generator
	gen, err := llm.NewChatGenerator(ctx, cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.GenerationModel, cfg.RequestTimeout)
	if err != nil {
		log.Printf("Generation disabled: %v", err)
	} else {
		generator = gen
	}

	// Optional external messaging channel
	var dispatcher service.Dispatcher
	pushClient := messenger.NewClient(cfg.ChannelAPIKey, cfg.ChannelBaseURL, cfg.DefaultChannelID, cfg.RequestTimeout)
	if pushClient.Configured() {
		d, err := messenger.NewDispatcher(pushClient, cfg.PushWorkers, cfg.RequestTimeout)
		if err != nil {
			log.Fatalf("Failed to start push dispatcher: %v", err)
		}
		defer d.Release()
		dispatcher = d
	}

	// Setup router
	r := handler.SetupRouter(cfg, &handler.Dependencies{
		Store:      st,
		Embedder:   embedder,
		Generator:  generator,
		Dispatcher: dispatcher,
	})

	// Start server
	addr := cfg.Host + ":" + cfg.Port
	log.Printf("LuiBot FAQ service starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

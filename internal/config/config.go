package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Host        string
	Port        string
	Environment string
	GinMode     string

	// Database; when empty the service runs on the in-memory store
	DatabaseURL string

	// OpenAI-compatible providers (embeddings + generation)
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	GenerationModel     string
	EmbeddingModel      string
	EmbeddingDimensions int
	RequestTimeout      time.Duration

	// Segmentation
	WindowSize    int
	WindowOverlap int

	// Retrieval
	TopK int

	// Optional external messaging channel
	ChannelAPIKey    string
	ChannelBaseURL   string
	DefaultChannelID string
	PushWorkers      int
}

func Load() *Config {
	return &Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		GinMode:     getEnv("GIN_MODE", "debug"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GenerationModel:     getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
		EmbeddingModel:      getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
		EmbeddingDimensions: getEnvInt("EMBEDDING_DIMENSIONS", 1536),
		RequestTimeout:      getEnvDuration("REQUEST_TIMEOUT", 60*time.Second),

		WindowSize:    getEnvInt("WINDOW_SIZE", 1000),
		WindowOverlap: getEnvInt("WINDOW_OVERLAP", 200),

		TopK: getEnvInt("RETRIEVAL_TOP_K", 6),

		ChannelAPIKey:    getEnv("CHANNEL_API_KEY", ""),
		ChannelBaseURL:   getEnv("CHANNEL_BASE_URL", ""),
		DefaultChannelID: getEnv("DEFAULT_CHANNEL_ID", ""),
		PushWorkers:      getEnvInt("PUSH_WORKERS", 4),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Upstream UpstreamConfig
	Content  ContentConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	SessionBackend     string // "memory" or "redis"
}

type DatabaseConfig struct {
	Connection string
}

type UpstreamConfig struct {
	BaseURL        string
	APIKey         string
	LLMModel       string
	EmbeddingModel string
	Temperature    float64
	MaxTokens      int
}

type ContentConfig struct {
	ClientProfilePath string
	BenchmarkPath     string
	TransactionsPath  string
	KnowledgeTopic    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionBackend:     getEnv("SESSION_BACKEND", "memory"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getEnv("UPSTREAM_BASE_URL", "https://openai-hub.neuraldeep.tech"),
			APIKey:         getEnv("API_KEY", ""),
			LLMModel:       getEnv("LLM_MODEL", "gpt-4o-mini"),
			EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0.8),
			MaxTokens:      getEnvAsInt("LLM_MAX_TOKENS", 600),
		},
		Content: ContentConfig{
			ClientProfilePath: getEnv("CLIENT_PROFILE_PATH", "data/zaman_personalized_rag_data.json"),
			BenchmarkPath:     getEnv("BENCHMARK_PATH", "data/zaman_benchmark_data.json"),
			TransactionsPath:  getEnv("TRANSACTIONS_PATH", "data/mock_transactions.json"),
			KnowledgeTopic:    getEnv("KNOWLEDGE_TOPIC_NAME", "EMBED_KNOWLEDGE_DOCUMENT"),
		},
	}
}

// Validate fails fast on configuration the service cannot run without.
// Everything else (DB, Redis, NATS) degrades at runtime instead.
func (c *Config) Validate() error {
	if c.Upstream.APIKey == "" {
		return fmt.Errorf("API_KEY is not configured")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Keys        APIKeys
	Recommender RecommenderConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	TMDB         string
	GoogleGemini string
	JWTSecret    string
}

type RecommenderConfig struct {
	ArtifactPath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			TMDB:         getEnv("TMDB_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JWTSecret:    JWTSecret(),
		},
		Recommender: RecommenderConfig{
			ArtifactPath: getEnv("RECOMMENDER_ARTIFACT_PATH", "artifacts/catalog.gob"),
		},
	}
}

const defaultJWTSecret = "default_secret"

// JWTSecret returns the token signing key. The token signer and the bearer
// middleware must agree on it, so both read through here; a set-but-empty
// env var counts as unset.
func JWTSecret() string {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return v
	}
	return defaultJWTSecret
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Driver     string // "sqlite" or "postgres"
	Path       string // sqlite file path
	Connection string // postgres DSN
}

type AuthConfig struct {
	JWTSecret       string
	SessionTTLMins  int
	MaxLoginRetries int
}

type AIConfig struct {
	HuggingFaceToken string
	LLMProvider      string // "huggingface", "ollama" or "disabled"
	LLMModel         string
	LLMBaseURL       string
	OllamaBaseURL    string
	ImageModel       string
	SentimentModel   string
	JokeAPIURL       string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.jsonl"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Path:       getEnv("DB_PATH", "nexus.db"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", "default_secret"),
			SessionTTLMins:  getEnvAsInt("SESSION_TTL_MINUTES", 60),
			MaxLoginRetries: getEnvAsInt("MAX_LOGIN_RETRIES", 5),
		},
		Ai: AIConfig{
			HuggingFaceToken: getEnv("HUGGINGFACE_TOKEN", ""),
			LLMProvider:      getEnv("LLM_PROVIDER", "huggingface"),
			LLMModel:         getEnv("LLM_MODEL", "facebook/blenderbot-3B"),
			LLMBaseURL:       getEnv("LLM_BASE_URL", ""),
			OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			ImageModel:       getEnv("IMAGE_MODEL", "stabilityai/stable-diffusion-2-1"),
			SentimentModel:   getEnv("SENTIMENT_MODEL", ""),
			JokeAPIURL:       getEnv("JOKE_API_URL", "https://v2.jokeapi.dev"),
		},
	}
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

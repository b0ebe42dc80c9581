package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// LLM provider configuration.
	LLMProvider       string `mapstructure:"LLM_PROVIDER"` // "openrouter" or "gemini"
	LLMModel          string `mapstructure:"LLM_MODEL"`
	OpenRouterAPIKey  string `mapstructure:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string `mapstructure:"OPENROUTER_BASE_URL"`
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`

	// Data file locations.
	CatalogPath string `mapstructure:"CATALOG_PATH"`
	LedgerPath  string `mapstructure:"LEDGER_PATH"`

	// Session store configuration.
	SessionStore      string `mapstructure:"SESSION_STORE"` // "redis" or "memory"
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	MaxHistoryTurns   int    `mapstructure:"MAX_HISTORY_TURNS"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Pull in a local .env first so viper sees its variables.
	_ = godotenv.Load()

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("LLM_PROVIDER", "openrouter")
	viper.SetDefault("LLM_MODEL", "meta-llama/llama-3.1-8b-instruct")
	viper.SetDefault("OPENROUTER_API_KEY", "")
	viper.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("CATALOG_PATH", "data/restaurants.json")
	viper.SetDefault("LEDGER_PATH", "data/bookings.json")
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("MAX_HISTORY_TURNS", 20)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

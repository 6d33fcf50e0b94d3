package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// CORS
	CORSAllowedOrigins []string

	// Rate limiting, in ulule/limiter notation (e.g. "100-M").
	RateLimit string

	// Analytics
	PosthogAPIKey string

	// FX provider
	FXProviderURL     string `mapstructure:"FX_PROVIDER_URL"`
	FXRefreshInterval time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("FX_PROVIDER_URL", "")
	viper.SetDefault("FX_REFRESH_INTERVAL", "12h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.FXProviderURL = viper.GetString("FX_PROVIDER_URL")
	if cfg.FXProviderURL == "" {
		log.Println("Warning: FX_PROVIDER_URL not set. Automatic rate refresh is disabled; stored and fallback rates will be used.")
	}

	refreshStr := viper.GetString("FX_REFRESH_INTERVAL")
	refreshInterval, err := time.ParseDuration(refreshStr)
	if err != nil || refreshInterval <= 0 {
		refreshInterval = 12 * time.Hour
		if refreshStr != "" {
			log.Printf("Warning: Invalid value for FX_REFRESH_INTERVAL ('%s'). Defaulting to %s.\n", refreshStr, refreshInterval.String())
		}
	}
	cfg.FXRefreshInterval = refreshInterval

	return cfg, nil
}

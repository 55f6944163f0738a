package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// StorePath is the filesystem path of the embedded durable store.
	StorePath string
	// RecentSalesCacheSize bounds the in-memory recent-sales view.
	RecentSalesCacheSize int
	// DefaultLowStockThreshold is applied to products created without one.
	DefaultLowStockThreshold int
	IsProduction             bool
	LogLevel                 string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("STORE_PATH", "./vyapar.db")
	viper.SetDefault("RECENT_SALES_CACHE_SIZE", 50)
	viper.SetDefault("DEFAULT_LOW_STOCK_THRESHOLD", 10)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.StorePath = viper.GetString("STORE_PATH")
	if cfg.StorePath == "" {
		cfg.StorePath = "./vyapar.db"
		log.Printf("Warning: STORE_PATH environment variable not set. Defaulting to %s\n", cfg.StorePath)
	}

	cfg.RecentSalesCacheSize = viper.GetInt("RECENT_SALES_CACHE_SIZE")
	if cfg.RecentSalesCacheSize <= 0 {
		cfg.RecentSalesCacheSize = 50
		log.Printf("Warning: RECENT_SALES_CACHE_SIZE must be positive. Defaulting to %d\n", cfg.RecentSalesCacheSize)
	}

	cfg.DefaultLowStockThreshold = viper.GetInt("DEFAULT_LOW_STOCK_THRESHOLD")
	if cfg.DefaultLowStockThreshold < 0 {
		cfg.DefaultLowStockThreshold = 10
		log.Printf("Warning: DEFAULT_LOW_STOCK_THRESHOLD must be non-negative. Defaulting to %d\n", cfg.DefaultLowStockThreshold)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return cfg, nil
}

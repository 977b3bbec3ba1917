package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Matching  MatchingConfig
	Shopping  ShoppingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds catalog store configuration
type CatalogConfig struct {
	Path            string `mapstructure:"path"`
	PreferredSource string `mapstructure:"preferred_source"`
	SearchBaseURL   string `mapstructure:"search_base_url"`
	SeedOnStart     bool   `mapstructure:"seed_on_start"`
}

// MatchingConfig holds product matching configuration
type MatchingConfig struct {
	MinScore    float64 `mapstructure:"min_score"`
	EnableFuzzy bool    `mapstructure:"enable_fuzzy"`
}

// ShoppingConfig holds shopping list assembly configuration
type ShoppingConfig struct {
	FallbackPriceCHF  float64 `mapstructure:"fallback_price_chf"`
	SkipCommonStaples bool    `mapstructure:"skip_common_staples"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/paniermalin/")

	v.SetEnvPrefix("PANIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("catalog.path", "data/catalog.db")
	v.SetDefault("catalog.preferred_source", "api")
	v.SetDefault("catalog.search_base_url", "https://www.migros.ch/fr/search?query=")
	v.SetDefault("catalog.seed_on_start", true)

	// Strict floor: a poor substitution is costlier than a manual-search entry
	v.SetDefault("matching.min_score", 0.7)
	v.SetDefault("matching.enable_fuzzy", true)

	v.SetDefault("shopping.fallback_price_chf", 3.50)
	v.SetDefault("shopping.skip_common_staples", true)

	v.SetDefault("cache.ttl", "24h")

	v.SetDefault("ratelimit.per_ip", 60)

	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required (set PANIER_CATALOG_PATH)")
	}

	if config.Matching.MinScore < 0 || config.Matching.MinScore > 1 {
		return fmt.Errorf("matching min_score must be between 0 and 1, got: %v", config.Matching.MinScore)
	}

	if config.Shopping.FallbackPriceCHF <= 0 {
		return fmt.Errorf("shopping fallback_price_chf must be positive, got: %v", config.Shopping.FallbackPriceCHF)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}

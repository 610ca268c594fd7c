package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pricewatch/backend/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Engine    EngineConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
	Retailers []domain.Retailer
	Rules     domain.MatchRules
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EngineConfig holds reconciliation engine tunables
type EngineConfig struct {
	Mode           string `mapstructure:"mode"`
	RadicalLength  int    `mapstructure:"radical_length"`
	MinTokenLength int    `mapstructure:"min_token_length"`
	DebugMatching  bool   `mapstructure:"debug_matching"`
}

// StoreConfig holds the input/output file locations
type StoreConfig struct {
	BasketPath string `mapstructure:"basket_path"`
	PricesDir  string `mapstructure:"prices_dir"`
	OutputPath string `mapstructure:"output_path"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricewatch/")

	v.SetEnvPrefix("PRICEWATCH")
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
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
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("engine.mode", string(domain.ModeAllCoverage))
	v.SetDefault("engine.radical_length", 3)
	v.SetDefault("engine.min_token_length", 3)
	v.SetDefault("engine.debug_matching", false)

	v.SetDefault("store.basket_path", "products.txt")
	v.SetDefault("store.prices_dir", "docs/prices")
	v.SetDefault("store.output_path", "docs/prices/compare.json")

	v.SetDefault("ratelimit.per_ip", 100)

	v.SetDefault("retailers", []map[string]string{
		{"id": "goodbom", "name": "GoodBom"},
		{"id": "tenda", "name": "Tenda"},
		{"id": "arena", "name": "Arena"},
		{"id": "savegnago", "name": "Savegnago"},
	})

	defaults := domain.DefaultMatchRules()
	v.SetDefault("rules.exclude_unless_requested", defaults.ExcludeUnlessRequested)
	v.SetDefault("rules.variant_groups", defaults.VariantGroups)
}

// validate validates the configuration
func validate(config *Config) error {
	if _, err := domain.ParseMode(config.Engine.Mode); err != nil {
		return fmt.Errorf("engine mode must be %q or %q, got: %s",
			domain.ModeAllCoverage, domain.ModeCommonBasket, config.Engine.Mode)
	}

	if config.Engine.RadicalLength < 2 {
		return fmt.Errorf("engine radical length must be >= 2, got: %d", config.Engine.RadicalLength)
	}

	if len(config.Retailers) == 0 {
		return fmt.Errorf("at least one retailer must be configured")
	}

	seen := make(map[string]bool, len(config.Retailers))
	for _, r := range config.Retailers {
		if r.ID == "" {
			return fmt.Errorf("retailer id must not be empty")
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate retailer id: %s", r.ID)
		}
		seen[r.ID] = true
	}

	if config.Store.BasketPath == "" {
		return fmt.Errorf("shopping list path is required")
	}

	return nil
}

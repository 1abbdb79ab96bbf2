package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings of the demo command, loaded from the
// environment and an optional .env file.
type Config struct {
	APIRoot            string        `mapstructure:"api_root"`
	Token              string        `mapstructure:"token"`
	LogLevel           string        `mapstructure:"log_level"`
	HTTPClient         string        `mapstructure:"http_client"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and .env.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("api_root", "https://conduit.productionready.io/api")
	v.SetDefault("token", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_client", "default")
	v.SetDefault("http_timeout_seconds", 30)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.HTTPClient != "default" && cfg.HTTPClient != "resty" {
		return nil, fmt.Errorf("invalid http_client %q (want default or resty)", cfg.HTTPClient)
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	APIKey                string        `mapstructure:"printful_api_key"`
	StoreID               int64         `mapstructure:"printful_store_id"`
	BaseURL               string        `mapstructure:"printful_base_url"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`

	JobsFile            string        `mapstructure:"jobs_file"`
	NotifiersFile       string        `mapstructure:"notifiers_file"`
	OutputDir           string        `mapstructure:"output_dir"`
	PollIntervalSeconds int64         `mapstructure:"poll_interval_seconds"`
	PollMaxAttempts     int           `mapstructure:"poll_max_attempts"`
	PollInterval        time.Duration `mapstructure:"-"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "printful-sdk")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("printful_api_key", "")
	v.SetDefault("printful_store_id", 0)
	v.SetDefault("printful_base_url", "https://api.printful.com")
	v.SetDefault("request_timeout_seconds", 30)
	v.SetDefault("jobs_file", "./configs/jobs.yaml")
	v.SetDefault("notifiers_file", "./configs/notifiers.yaml")
	v.SetDefault("output_dir", "./data/mockups")
	v.SetDefault("poll_interval_seconds", 5)
	v.SetDefault("poll_max_attempts", 24)
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/downloads.db")
	v.SetDefault("storage_ttl_seconds", int64((30*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("printful_base_url must not be empty")
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	if cfg.PollIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid poll_interval_seconds (must be positive seconds)")
	}
	if cfg.PollMaxAttempts <= 0 {
		return nil, fmt.Errorf("invalid poll_max_attempts (must be positive)")
	}
	cfg.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second

	if cfg.StorageTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second

	return &cfg, nil
}

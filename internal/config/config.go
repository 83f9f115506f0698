package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env     string  `mapstructure:"env"`     // current application environment (local, dev, prod etc)
	API     API     `mapstructure:"api"`     // backend API section
	Storage Storage `mapstructure:"storage"` // on-device storage section
	Catalog Catalog `mapstructure:"catalog"` // course catalog section
}

// API contains parameters for reaching the LinguaGo backend.
type API struct {
	BaseURL string        `mapstructure:"-"`       // backend base URL loaded from environment
	Timeout time.Duration `mapstructure:"timeout"` // overall per-request timeout
}

// Storage contains parameters of the local preference store.
type Storage struct {
	Path string `mapstructure:"path"` // path to the sqlite preferences file
}

// Catalog contains parameters of the static course catalog.
type Catalog struct {
	Path string `mapstructure:"path"` // path to JSON file with course metadata
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("storage.path", "data/linguago.db")
	v.SetDefault("catalog.path", "assets/data/courses.json")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("api_base_url", "LINGUAGO_API_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// The base URL may come from the environment or the config file;
	// the environment wins so emulator and device builds can repoint it.
	cfg.API.BaseURL = v.GetString("api_base_url")
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = v.GetString("api.base_url")
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:4000"
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 10 * time.Second
	}

	return &cfg, nil
}

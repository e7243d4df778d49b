package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
	StoreDriver string   `mapstructure:"STORE_DRIVER"`
	DataDir     string   `mapstructure:"DATA_DIR"`
	SQLitePath  string   `mapstructure:"SQLITE_PATH"`
	DatabaseURL string   `mapstructure:"DATABASE_URL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("STORE_DRIVER", "sqlite")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("SQLITE_PATH", "./data/hms.db")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("STORE_DRIVER")
	v.BindEnv("DATA_DIR")
	v.BindEnv("SQLITE_PATH")
	v.BindEnv("DATABASE_URL")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration can actually open a store.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "memory", "sqlite", "fs", "postgres":
	default:
		return fmt.Errorf("STORE_DRIVER must be \"memory\", \"fs\", \"sqlite\", or \"postgres\", got %q", c.StoreDriver)
	}
	if c.StoreDriver == "fs" && c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required when STORE_DRIVER is \"fs\"")
	}
	if c.StoreDriver == "sqlite" && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER is \"sqlite\"")
	}
	if c.StoreDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is \"postgres\"")
	}
	return nil
}

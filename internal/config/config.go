// Package config loads bot configuration. Values are resolved from
// (highest to lowest priority):
// 1. Environment variables (BOT_TOKEN, JOURNAL_PATH, LOG_LEVEL)
// 2. A .env file in the working directory
// 3. A YAML config file, when a path is given
// 4. Defaults
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// #region types

// Config holds all bot configuration.
type Config struct {
	Telegram Telegram `yaml:"telegram"`
	Journal  Journal  `yaml:"journal"`
	Logging  Logging  `yaml:"logging"`
}

// Telegram holds the Bot API connection and command rate limits.
type Telegram struct {
	// Token is the Bot API token. Required; there is no default.
	Token string `yaml:"token"`

	// RatePerMinute caps command replies per user. Default: 20.
	RatePerMinute int `yaml:"rate_per_minute"`

	// RateBurst is the short-term allowance before limiting kicks in.
	// Default: 5.
	RateBurst int `yaml:"rate_burst"`
}

// Journal holds the outcome database settings.
type Journal struct {
	// Path is the sqlite file location. Default: jokerbot.db.
	Path string `yaml:"path"`
}

// Logging holds logger settings.
type Logging struct {
	// Level is a zap level name: debug, info, warn, error. Default: info.
	Level string `yaml:"level"`
}

// #endregion types

// #region load

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Telegram: Telegram{
			RatePerMinute: 20,
			RateBurst:     5,
		},
		Journal: Journal{Path: "jokerbot.db"},
		Logging: Logging{Level: "info"},
	}
}

// Load resolves configuration. path may be empty, in which case only the
// .env file, the environment, and defaults apply. Callers that talk to
// Telegram must also call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	// Missing .env is fine; a present-but-broken one is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}
	if v := os.Getenv("JOURNAL_PATH"); v != "" {
		cfg.Journal.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RATE_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Telegram.RatePerMinute = n
		}
	}
}

// Validate reports configuration the bot cannot start with.
func (c Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram token is not set (BOT_TOKEN or telegram.token)")
	}
	if c.Telegram.RatePerMinute <= 0 {
		return fmt.Errorf("rate_per_minute must be positive, got %d", c.Telegram.RatePerMinute)
	}
	if c.Journal.Path == "" {
		return fmt.Errorf("journal path is not set")
	}
	return nil
}

// #endregion load

// Package config loads service settings from .env, an optional TOML file and
// the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

// Supported STORE values.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	// HTTP server
	Addr   string `toml:"addr"`
	WebDir string `toml:"web_dir"`

	// storage
	Store       string `toml:"store"`
	DatabaseURL string `toml:"database_url"`
	SQLitePath  string `toml:"sqlite_path"`

	// day bucketing
	Timezone string `toml:"timezone"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	LogFile     string `toml:"log_file"`
	LogToStdout bool   `toml:"log_to_stdout"`
}

func defaults() *Config {
	return &Config{
		Addr:       ":8080",
		Store:      StoreMemory,
		SQLitePath: "./data/dietlog.db",
		Timezone:   "Local",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load builds a Config. A .env file in the working directory seeds the
// environment when present, path (if non-empty) is decoded as TOML, and
// environment variables override both.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found", path)
			}
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	cfg.Addr = getEnv("ADDR", cfg.Addr)
	cfg.WebDir = getEnv("WEB_DIR", cfg.WebDir)
	cfg.Store = strings.ToLower(getEnv("STORE", cfg.Store))
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.Timezone = getEnv("TIMEZONE", cfg.Timezone)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", cfg.LogFormat))
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.LogToStdout = getEnv("LOG_TO_STDOUT", boolString(cfg.LogToStdout)) == "true"

	return cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var err error

	if strings.TrimSpace(c.Addr) == "" {
		err = multierr.Append(err, errors.New("ADDR must not be empty"))
	}

	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			err = multierr.Append(err, errors.New("DATABASE_URL is required when STORE=postgres"))
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			err = multierr.Append(err, errors.New("SQLITE_PATH is required when STORE=sqlite"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("invalid STORE %q: must be one of memory, postgres, sqlite", c.Store))
	}

	if _, locErr := c.Location(); locErr != nil {
		err = multierr.Append(err, locErr)
	}

	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		err = multierr.Append(err, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.LogFormat))
	}

	if c.WebDir != "" {
		if info, statErr := os.Stat(c.WebDir); statErr != nil || !info.IsDir() {
			err = multierr.Append(err, fmt.Errorf("WEB_DIR %q is not a directory", c.WebDir))
		}
	}

	return err
}

// Location resolves Timezone. "Local" and the empty string mean time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

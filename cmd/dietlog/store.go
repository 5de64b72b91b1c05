package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"dietlog/internal/adapter/memory"
	"dietlog/internal/adapter/postgres"
	"dietlog/internal/adapter/sqlite"
	"dietlog/internal/config"
	"dietlog/internal/domain"
	"dietlog/internal/logging"
)

// Globals is passed to every command's Run method.
type Globals struct {
	ConfigPath string
}

type store interface {
	domain.ProfileRepository
	domain.DietRepository
	domain.WeightRepository
}

func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormat == "json",
	})
}

// openStore returns the configured backend and a function releasing it.
func openStore(cfg *config.Config) (store, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		return db, func() { _ = db.Close() }, nil
	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		return db, func() { _ = db.Close() }, nil
	default:
		log.Warnln("using in-memory store; data is lost on exit")
		return memory.New(), func() {}, nil
	}
}

func logToStderr() {
	log.SetOutput(os.Stderr)
}

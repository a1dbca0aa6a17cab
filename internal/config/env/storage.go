package env

import (
	"board_backend/internal/config"
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type storageConfig struct {
	DriverName string `env:"STORAGE_DRIVER" envDefault:"memory"`
	Session    string `env:"SESSION_ID" envDefault:"default"`
}

func NewStorageConfig() (config.StorageConfig, error) {
	cfg := &storageConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse storage config: %w", err)
	}

	cfg.DriverName = strings.ToLower(strings.TrimSpace(cfg.DriverName))
	switch cfg.DriverName {
	case config.StorageMemory, config.StoragePostgres, config.StorageSQLite:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.DriverName)
	}
	if len(cfg.Session) == 0 {
		return nil, errors.New("session id must not be empty")
	}

	return cfg, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.DriverName
}

func (cfg *storageConfig) SessionID() string {
	return cfg.Session
}

type sqliteConfig struct {
	DBPath string `env:"SQLITE_PATH" envDefault:"data/game.db"`
}

func NewSQLiteConfig() (config.SQLiteConfig, error) {
	cfg := &sqliteConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse sqlite config: %w", err)
	}
	return cfg, nil
}

func (cfg *sqliteConfig) Path() string {
	return cfg.DBPath
}

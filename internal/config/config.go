package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type GameConfig interface {
	Wager() int
	StartBalance() int
	FreeSpins() int
	BonusMultiplier() int
	BonusCellValue() int
	StatsWindow() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type SQLiteConfig interface {
	Path() string
}

type StorageConfig interface {
	Driver() string
	SessionID() string
}

type LogConfig interface {
	Level() zerolog.Level
	Console() bool
}

package env

import (
	"board_backend/internal/config"
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

type pgConfig struct {
	DSNValue string `env:"PG_DSN"`
}

func NewPGConfig() (config.PGConfig, error) {
	cfg := &pgConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if len(cfg.DSNValue) == 0 {
		return nil, errors.New("pg dsn not found")
	}
	log.Debug().Msg("pg dsn loaded")

	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.DSNValue
}

package env

import (
	"board_backend/internal/config"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

type logConfig struct {
	LevelName string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"json"`

	level zerolog.Level
}

func NewLogConfig() (config.LogConfig, error) {
	cfg := &logConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse log config: %w", err)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LevelName))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LevelName, err)
	}
	cfg.level = lvl

	return cfg, nil
}

func (cfg *logConfig) Level() zerolog.Level {
	return cfg.level
}

func (cfg *logConfig) Console() bool {
	return strings.EqualFold(cfg.Format, "console")
}

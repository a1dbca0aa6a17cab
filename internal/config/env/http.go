package env

import (
	"board_backend/internal/config"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	cfg := &httpConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse http config: %w", err)
	}
	return cfg, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.Addr
}

package env

import (
	"board_backend/internal/config"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	defaultWager           = 50
	defaultStartBalance    = 100
	defaultFreeSpins       = 3
	defaultBonusMultiplier = 10
	defaultBonusCellValue  = 10
	defaultStatsWindow     = 500
)

// gameFile структура config.yaml. Указатели позволяют отличить
// отсутствующий ключ от явного нуля.
type gameFile struct {
	Game struct {
		Wager           *int `yaml:"wager"`
		StartBalance    *int `yaml:"start_balance"`
		FreeSpins       *int `yaml:"free_spins"`
		BonusMultiplier *int `yaml:"bonus_multiplier"`
		BonusCellValue  *int `yaml:"bonus_cell_value"`
		StatsWindow     *int `yaml:"stats_window"`
	} `yaml:"game"`
}

type gameConfig struct {
	wager           int
	startBalance    int
	freeSpins       int
	bonusMultiplier int
	bonusCellValue  int
	statsWindow     int
}

// NewDefaultGameConfig правила игры по умолчанию:
// ставка 50, стартовый баланс 100, 3 фриспина, бонусное поле x10
func NewDefaultGameConfig() config.GameConfig {
	return &gameConfig{
		wager:           defaultWager,
		startBalance:    defaultStartBalance,
		freeSpins:       defaultFreeSpins,
		bonusMultiplier: defaultBonusMultiplier,
		bonusCellValue:  defaultBonusCellValue,
		statsWindow:     defaultStatsWindow,
	}
}

// NewGameConfigFromYAML читает правила игры из yaml файла.
// Отсутствующий файл или ключ - значения по умолчанию.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	cfg := NewDefaultGameConfig().(*gameConfig)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("game config not found, using defaults")
			return cfg, nil
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var file gameFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	g := file.Game
	overrides := []struct {
		name     string
		value    *int
		target   *int
		positive bool
	}{
		{"wager", g.Wager, &cfg.wager, false},
		{"start_balance", g.StartBalance, &cfg.startBalance, false},
		{"free_spins", g.FreeSpins, &cfg.freeSpins, true},
		{"bonus_multiplier", g.BonusMultiplier, &cfg.bonusMultiplier, true},
		{"bonus_cell_value", g.BonusCellValue, &cfg.bonusCellValue, false},
		{"stats_window", g.StatsWindow, &cfg.statsWindow, true},
	}
	for _, o := range overrides {
		if o.value == nil {
			continue
		}
		if *o.value < 0 || (o.positive && *o.value == 0) {
			return nil, fmt.Errorf("invalid game config: %s = %d", o.name, *o.value)
		}
		*o.target = *o.value
	}

	return cfg, nil
}

func (g *gameConfig) Wager() int {
	return g.wager
}

func (g *gameConfig) StartBalance() int {
	return g.startBalance
}

func (g *gameConfig) FreeSpins() int {
	return g.freeSpins
}

func (g *gameConfig) BonusMultiplier() int {
	return g.bonusMultiplier
}

func (g *gameConfig) BonusCellValue() int {
	return g.bonusCellValue
}

func (g *gameConfig) StatsWindow() int {
	return g.statsWindow
}

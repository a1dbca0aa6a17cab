package game

import (
	"board_backend/internal/model"
	"math/rand/v2"
)

// RNG источник случайных чисел, IntN возвращает значение в [0, n)
type RNG interface {
	IntN(n int) int
}

// globalRNG Автоматически засеянный генератор пакета math/rand/v2,
// безопасен для конкурентного использования
type globalRNG struct{}

func (globalRNG) IntN(n int) int {
	return rand.IntN(n)
}

type DiceRoller struct {
	rng RNG
}

// NewDiceRoller rng == nil - глобальный генератор
func NewDiceRoller(rng RNG) *DiceRoller {
	if rng == nil {
		rng = globalRNG{}
	}
	return &DiceRoller{rng: rng}
}

// Roll Два кубика, каждый равномерно в [1, 6]
func (d *DiceRoller) Roll() model.DiceRoll {
	return model.DiceRoll{d.rng.IntN(6) + 1, d.rng.IntN(6) + 1}
}

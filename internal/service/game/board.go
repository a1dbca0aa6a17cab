package game

import "board_backend/internal/model"

type BoardGenerator struct {
	rng RNG
}

// NewBoardGenerator rng == nil - глобальный генератор
func NewBoardGenerator(rng RNG) *BoardGenerator {
	if rng == nil {
		rng = globalRNG{}
	}
	return &BoardGenerator{rng: rng}
}

// Generate Новое поле: индексы 0..15 перемешиваются Фишером-Йетсом,
// первый индекс получает бонус, остальные - призы 5..75 по порядку
func (g *BoardGenerator) Generate() model.Board {
	var idx [model.BoardSize]int
	for i := range idx {
		idx[i] = i
	}
	for i := model.BoardSize - 1; i >= 1; i-- {
		j := g.rng.IntN(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}

	board := make(model.Board, model.BoardSize)
	board[idx[0]] = model.BonusCell()
	for k, v := range model.PrizeValues() {
		board[idx[k+1]] = model.PrizeCell(v)
	}
	return board
}

// DeriveBonusBoard Поле бонусного раунда. Бонус превращается в bonusValue,
// приз умножается на multiplier. Исходное поле не меняется.
func DeriveBonusBoard(board model.Board, multiplier, bonusValue int) model.Board {
	out := make(model.Board, len(board))
	for i, cell := range board {
		if cell.Bonus {
			out[i] = model.PrizeCell(bonusValue)
			continue
		}
		out[i] = model.PrizeCell(cell.Value * multiplier)
	}
	return out
}

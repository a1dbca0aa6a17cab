package converter

import (
	"board_backend/internal/api/dto/game"
	"board_backend/internal/model"
)

const bonusMarker = "bonus"

func ToBetResponse(res model.BetResult) game.BetResponse {
	out := game.BetResponse{
		Balance:          res.Balance,
		DiceResult:       []int{},
		LastPrizeWon:     ToCell(res.LastPrize),
		AvailableToSpin:  res.AvailableToSpin,
		BonusModeBoard:   ToBoard(res.BonusBoard),
		BonusMode:        res.BonusMode,
		FreespinAmount:   res.FreeSpins,
		RegularModeBoard: ToBoard(res.Board),
	}
	if res.Dice != nil {
		out.DiceResult = ToDice(*res.Dice)
	}
	return out
}

// ToStateResponse wager нужен для вычисления available_to_spin
func ToStateResponse(state model.GameState, wager int) game.StateResponse {
	out := game.StateResponse{
		Balance:         state.Balance,
		Position:        state.Position,
		Mode:            string(state.Mode()),
		FreespinAmount:  state.FreeSpins(),
		BonusModeBoard:  ToBoard(state.BonusBoard()),
		LastPrizeWon:    ToCell(state.LastPrize),
		DiceResult:      []int{},
		AvailableToSpin: state.AvailableToSpin(wager),
	}
	if state.LastDice != nil {
		out.DiceResult = ToDice(*state.LastDice)
	}
	return out
}

// ToBoard nil остается nil, чтобы в JSON получился null
func ToBoard(board model.Board) []game.Cell {
	if board == nil {
		return nil
	}
	out := make([]game.Cell, len(board))
	for i := range board {
		out[i] = ToCell(&board[i])
	}
	return out
}

func ToCell(cell *model.Cell) game.Cell {
	if cell == nil {
		return nil
	}
	if cell.Bonus {
		return bonusMarker
	}
	return cell.Value
}

func ToDice(dice model.DiceRoll) []int {
	return []int{dice[0], dice[1]}
}

func ToStatsResponse(stats model.Stats) game.StatsResponse {
	return game.StatsResponse{
		TotalRounds:     stats.TotalRounds,
		TotalWagered:    stats.TotalWagered,
		TotalPayout:     stats.TotalPayout,
		BonusTriggers:   stats.BonusTriggers,
		FreeSpinsPlayed: stats.FreeSpinsPlayed,
		CurrentRTP:      stats.CurrentRTP,
		WindowRTP:       stats.WindowRTP,
		WindowSize:      stats.WindowSize,
	}
}

func ToRoundsResponse(rounds []model.RoundRecord) []game.RoundResponse {
	result := make([]game.RoundResponse, len(rounds))
	for i, r := range rounds {
		prize := r.Prize
		result[i] = game.RoundResponse{
			ID:           r.ID,
			PlayedAt:     r.PlayedAt,
			Mode:         string(r.Mode),
			Dice:         ToDice(r.Dice),
			Position:     r.Position,
			Prize:        ToCell(&prize),
			Wager:        r.Wager,
			Payout:       r.Payout,
			BonusStarted: r.BonusStarted,
			BalanceAfter: r.BalanceAfter,
		}
	}
	return result
}

package service

import (
	"board_backend/internal/model"
	"context"
)

type GameService interface {
	PlaceBet(ctx context.Context) (*model.BetResult, error)
	Reset(ctx context.Context) (*model.BetResult, error)
	Board(ctx context.Context) (model.Board, error)
	State(ctx context.Context) (*model.GameState, error)
	RollDice(ctx context.Context) model.DiceRoll
	Stats() model.Stats
	Rounds(limit int) []model.RoundRecord
}

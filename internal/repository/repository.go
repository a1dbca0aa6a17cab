package repository

import (
	"board_backend/internal/model"
	"context"
	"errors"
)

var (
	// ErrStateNotFound - для сессии еще ничего не сохранено
	ErrStateNotFound = errors.New("game state not found")
	// ErrCorruptState - сохраненные данные не проходят проверку инвариантов
	ErrCorruptState = errors.New("game state is corrupt")
)

// GameRepository хранит поле и состояние сессии как одно целое
// Load используется перед записью и может блокировать сессию до конца транзакции,
// Read - только для чтения, без блокировки.
type GameRepository interface {
	Load(ctx context.Context, sessionID string) (model.Board, *model.GameState, error)
	Read(ctx context.Context, sessionID string) (model.Board, *model.GameState, error)
	Save(ctx context.Context, sessionID string, board model.Board, state *model.GameState) error
}

type StatsRepository interface {
	Record(round model.RoundRecord)
	Stats() model.Stats
	Rounds(limit int) []model.RoundRecord
}

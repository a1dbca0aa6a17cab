// Package document кодирует поле и состояние сессии в JSON документы
// и проверяет их при чтении. Используется SQL хранилищами.
package document

import (
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"encoding/json"
	"fmt"
)

// Encode возвращает JSON поля и JSON состояния
func Encode(board model.Board, state *model.GameState) ([]byte, []byte, error) {
	if state == nil {
		return nil, nil, fmt.Errorf("encode state: state is nil")
	}

	boardJSON, err := json.Marshal(board)
	if err != nil {
		return nil, nil, fmt.Errorf("encode board: %w", err)
	}

	doc := State{
		Balance:        state.Balance,
		Position:       state.Position,
		Mode:           state.Mode(),
		FreespinAmount: state.FreeSpins(),
		BonusBoard:     state.BonusBoard(),
		LastPrizeWon:   state.LastPrize,
		LastDiceResult: state.LastDice,
	}
	stateJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("encode state: %w", err)
	}

	return boardJSON, stateJSON, nil
}

// required - обязательные поля документа состояния
type required struct {
	Balance  *int        `json:"balance"`
	Position *int        `json:"position"`
	Mode     *model.Mode `json:"mode"`
}

// Decode разбирает документы. Любое нарушение инвариантов - ErrCorruptState.
func Decode(boardJSON, stateJSON []byte) (model.Board, *model.GameState, error) {
	var board model.Board
	if err := json.Unmarshal(boardJSON, &board); err != nil {
		return nil, nil, fmt.Errorf("%w: board: %v", repository.ErrCorruptState, err)
	}
	if err := board.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", repository.ErrCorruptState, err)
	}

	var req required
	if err := json.Unmarshal(stateJSON, &req); err != nil {
		return nil, nil, fmt.Errorf("%w: state: %v", repository.ErrCorruptState, err)
	}
	if req.Balance == nil || req.Position == nil || req.Mode == nil {
		return nil, nil, fmt.Errorf("%w: state is missing required fields", repository.ErrCorruptState)
	}

	var doc State
	if err := json.Unmarshal(stateJSON, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: state: %v", repository.ErrCorruptState, err)
	}

	state, err := toModel(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", repository.ErrCorruptState, err)
	}
	return board, state, nil
}

func toModel(doc State) (*model.GameState, error) {
	if doc.Position < 0 || doc.Position >= model.BoardSize {
		return nil, fmt.Errorf("position %d out of range", doc.Position)
	}
	if doc.LastDiceResult != nil {
		for _, d := range doc.LastDiceResult {
			if d < 1 || d > 6 {
				return nil, fmt.Errorf("dice value %d out of range", d)
			}
		}
	}

	state := &model.GameState{
		Balance:   doc.Balance,
		Position:  doc.Position,
		LastPrize: doc.LastPrizeWon,
		LastDice:  doc.LastDiceResult,
	}

	switch doc.Mode {
	case model.ModeRegular:
		if doc.BonusBoard != nil || doc.FreespinAmount != 0 {
			return nil, fmt.Errorf("regular mode carries bonus data")
		}
	case model.ModeBonus:
		if len(doc.BonusBoard) != model.BoardSize {
			return nil, fmt.Errorf("bonus board has %d cells", len(doc.BonusBoard))
		}
		if doc.FreespinAmount <= 0 {
			return nil, fmt.Errorf("bonus mode without free spins")
		}
		state.Bonus = &model.BonusRound{
			Board:     doc.BonusBoard,
			FreeSpins: doc.FreespinAmount,
		}
	default:
		return nil, fmt.Errorf("unknown mode %q", doc.Mode)
	}

	return state, nil
}

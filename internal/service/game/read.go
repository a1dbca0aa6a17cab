package game

import (
	"board_backend/internal/model"
	"context"
)

// Board Текущее поле. Пустая сессия создается при первом чтении.
func (s *serv) Board(ctx context.Context) (model.Board, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	board, _, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (s *serv) State(ctx context.Context) (*model.GameState, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	_, state, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// RollDice Бросок без изменения сессии
func (s *serv) RollDice(_ context.Context) model.DiceRoll {
	return s.dice.Roll()
}

func (s *serv) Stats() model.Stats {
	return s.statsRepo.Stats()
}

func (s *serv) Rounds(limit int) []model.RoundRecord {
	return s.statsRepo.Rounds(limit)
}

package game

import (
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"context"
	"errors"
	"fmt"
)

// load Читает сессию. Если ее нет или она испорчена - создает новую и сохраняет.
func (s *serv) load(ctx context.Context) (model.Board, *model.GameState, error) {
	board, state, err := s.repo.Load(ctx, s.sessionID)
	switch {
	case err == nil:
		return board, state, nil
	case errors.Is(err, repository.ErrStateNotFound):
		s.log.Info().Msg("no stored session, starting a new one")
	case errors.Is(err, repository.ErrCorruptState):
		s.log.Warn().Err(err).Msg("stored session is corrupt, starting a new one")
	default:
		return nil, nil, fmt.Errorf("%w: load: %w", ErrPersistence, err)
	}

	board, state = s.fresh()
	if err := s.save(ctx, board, state); err != nil {
		return nil, nil, err
	}
	return board, state, nil
}

// read Чтение без блокировки строки. Транзакция с load нужна, только
// если сессию приходится создавать заново. Вызывающий держит s.mtx.
func (s *serv) read(ctx context.Context) (model.Board, *model.GameState, error) {
	board, state, err := s.repo.Read(ctx, s.sessionID)
	if err == nil {
		return board, state, nil
	}
	if !errors.Is(err, repository.ErrStateNotFound) && !errors.Is(err, repository.ErrCorruptState) {
		return nil, nil, fmt.Errorf("%w: read: %w", ErrPersistence, err)
	}

	err = s.inTx(ctx, func(txCtx context.Context) error {
		board, state, err = s.load(txCtx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return board, state, nil
}

// fresh Новое поле и состояние по умолчанию
func (s *serv) fresh() (model.Board, *model.GameState) {
	return s.generator.Generate(), model.NewGameState(s.cfg.StartBalance())
}

func (s *serv) save(ctx context.Context, board model.Board, state *model.GameState) error {
	if err := s.repo.Save(ctx, s.sessionID, board, state); err != nil {
		return fmt.Errorf("%w: save: %w", ErrPersistence, err)
	}
	return nil
}

// inTx Выполняет fn в транзакции. Вызывающий держит s.mtx.
func (s *serv) inTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	err := s.txManager.Do(ctx, fn)
	if err != nil && !errors.Is(err, ErrPersistence) {
		err = fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return err
}

// result Снимок, который видит клиент
func (s *serv) result(board model.Board, state *model.GameState) *model.BetResult {
	res := &model.BetResult{
		Balance:         state.Balance,
		AvailableToSpin: state.AvailableToSpin(s.cfg.Wager()),
		BonusBoard:      state.BonusBoard().Clone(),
		BonusMode:       state.Mode() == model.ModeBonus,
		FreeSpins:       state.FreeSpins(),
		Board:           board.Clone(),
	}
	if state.LastDice != nil {
		dice := *state.LastDice
		res.Dice = &dice
	}
	if state.LastPrize != nil {
		prize := *state.LastPrize
		res.LastPrize = &prize
	}
	return res
}

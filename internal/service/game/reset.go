package game

import (
	"board_backend/internal/model"
	"context"
)

// Reset Новое поле и состояние по умолчанию, независимо от текущего
func (s *serv) Reset(ctx context.Context) (*model.BetResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var res *model.BetResult

	err := s.inTx(ctx, func(txCtx context.Context) error {
		board, state := s.fresh()
		if err := s.save(txCtx, board, state); err != nil {
			return err
		}
		res = s.result(board, state)
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Msg("reset failed")
		return nil, err
	}

	s.log.Info().Int("balance", res.Balance).Msg("game reset")
	return res, nil
}

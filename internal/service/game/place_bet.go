package game

import (
	"board_backend/internal/model"
	"context"

	"github.com/google/uuid"
)

// PlaceBet Один ход: бросок, перемещение, списание или фриспин, приз, сохранение.
// Если сохранить не удалось, состояние остается прежним.
// Раунд попадает в статистику под тем же мьютексом, что и сохранение,
// поэтому порядок раундов совпадает с порядком записи.
func (s *serv) PlaceBet(ctx context.Context) (*model.BetResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var (
		res   *model.BetResult
		round model.RoundRecord
	)

	err := s.inTx(ctx, func(txCtx context.Context) error {
		board, state, err := s.load(txCtx)
		if err != nil {
			return err
		}

		nextBoard, next := s.play(board, state, &round)

		if err := s.save(txCtx, nextBoard, next); err != nil {
			return err
		}
		res = s.result(nextBoard, next)
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Msg("place bet failed")
		return nil, err
	}

	round.ID = uuid.NewString()
	round.PlayedAt = s.now().UTC()
	round.BalanceAfter = res.Balance
	s.statsRepo.Record(round)

	switch {
	case round.BonusStarted:
		s.log.Info().Str("round", round.ID).Int("free_spins", res.FreeSpins).Msg("bonus round started")
	case round.Mode == model.ModeBonus && !res.BonusMode:
		s.log.Info().Str("round", round.ID).Int("balance", res.Balance).Msg("bonus round finished")
	}

	s.log.Debug().
		Str("round", round.ID).
		Str("mode", string(round.Mode)).
		Ints("dice", round.Dice[:]).
		Int("position", round.Position).
		Int("balance", res.Balance).
		Bool("bonus_started", round.BonusStarted).
		Msg("bet placed")

	return res, nil
}

// play Применяет ход к копии состояния. Входные данные не меняются.
func (s *serv) play(board model.Board, state *model.GameState, round *model.RoundRecord) (model.Board, *model.GameState) {
	dice := s.dice.Roll()
	next := state.Clone()
	nextBoard := board

	next.Position = (next.Position + dice.Sum()) % model.BoardSize
	next.LastDice = &dice

	round.Mode = state.Mode()
	round.Dice = dice
	round.Position = next.Position

	if next.Bonus != nil {
		// Фриспин: без списания, приз с бонусного поля
		cell := next.Bonus.Board[next.Position]
		next.LastPrize = &cell
		round.Prize = cell
		if !cell.Bonus {
			next.Balance += cell.Value
			round.Payout = cell.Value
		}

		next.Bonus.FreeSpins--
		if next.Bonus.FreeSpins <= 0 {
			next.Bonus = nil
		}
		return nextBoard, next
	}

	// Обычный ход: ставка списывается всегда, баланс может уйти в минус
	wager := s.cfg.Wager()
	next.Balance -= wager
	round.Wager = wager

	cell := board[next.Position]
	next.LastPrize = &cell
	round.Prize = cell
	if cell.Bonus {
		next.Bonus = &model.BonusRound{
			Board:     DeriveBonusBoard(board, s.cfg.BonusMultiplier(), s.cfg.BonusCellValue()),
			FreeSpins: s.cfg.FreeSpins(),
		}
		// После бонуса играется уже новое поле
		nextBoard = s.generator.Generate()
		round.BonusStarted = true
		return nextBoard, next
	}

	next.Balance += cell.Value
	round.Payout = cell.Value
	return nextBoard, next
}

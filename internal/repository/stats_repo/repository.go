package stats_repo

import (
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"sync"
)

// defaultWindowSize Размер окна, если в конфиге передан ноль
const defaultWindowSize = 500

// statsRepo Статистика по раундам в памяти процесса
type statsRepo struct {
	mtx   sync.RWMutex
	stats model.Stats
	// window Последние раунды, старые в начале
	window []model.RoundRecord
}

// NewStatsRepository Конструктор с размером окна для RTP и истории раундов
func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &statsRepo{
		stats:  model.Stats{WindowSize: windowSize},
		window: make([]model.RoundRecord, 0, windowSize),
	}
}

// Record Обновление статистики после сохраненного раунда
func (r *statsRepo) Record(round model.RoundRecord) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.stats.TotalRounds++
	r.stats.TotalWagered += round.Wager
	r.stats.TotalPayout += round.Payout
	if round.BonusStarted {
		r.stats.BonusTriggers++
	}
	if round.Mode == model.ModeBonus {
		r.stats.FreeSpinsPlayed++
	}
	r.stats.CurrentRTP = rtp(r.stats.TotalPayout, r.stats.TotalWagered)

	// Поддерживаем размер окна
	r.window = append(r.window, round)
	if len(r.window) > r.stats.WindowSize {
		r.window = r.window[1:]
	}

	var windowWager, windowPayout int
	for _, rec := range r.window {
		windowWager += rec.Wager
		windowPayout += rec.Payout
	}
	r.stats.WindowRTP = rtp(windowPayout, windowWager)
}

// Stats Копия текущей статистики
func (r *statsRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.stats
}

// Rounds Последние раунды, новые первыми. limit <= 0 - все окно
func (r *statsRepo) Rounds(limit int) []model.RoundRecord {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if limit <= 0 || limit > len(r.window) {
		limit = len(r.window)
	}
	out := make([]model.RoundRecord, 0, limit)
	for i := len(r.window) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.window[i])
	}
	return out
}

// rtp Процент выплат от ставок
func rtp(payout, wager int) float64 {
	if wager <= 0 {
		return 0
	}
	return float64(payout) / float64(wager) * 100
}

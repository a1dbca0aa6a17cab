package game

import "time"

// Клетка поля в JSON: число или "bonus"
type Cell = any

type BetResponse struct {
	Balance          int    `json:"balance"`            // Баланс после хода
	DiceResult       []int  `json:"dice_result"`        // Пустой после сброса
	LastPrizeWon     Cell   `json:"last_prize_won"`     // Число, "bonus" или null
	AvailableToSpin  bool   `json:"available_to_spin"`  // Можно ли делать следующий ход
	BonusModeBoard   []Cell `json:"bonus_mode_board"`   // null вне бонуса
	BonusMode        bool   `json:"bonus_mode"`         // Идет ли бонусный раунд
	FreespinAmount   int    `json:"freespin_amount"`    // Остаток фриспинов
	RegularModeBoard []Cell `json:"regular_mode_board"` // Сохраненное обычное поле
}

type StateResponse struct {
	Balance         int    `json:"balance"`
	Position        int    `json:"position"`
	Mode            string `json:"mode"`
	FreespinAmount  int    `json:"freespin_amount"`
	BonusModeBoard  []Cell `json:"bonus_mode_board"`
	LastPrizeWon    Cell   `json:"last_prize_won"`
	DiceResult      []int  `json:"dice_result"`
	AvailableToSpin bool   `json:"available_to_spin"`
}

type StatsResponse struct {
	TotalRounds     int     `json:"total_rounds"`
	TotalWagered    int     `json:"total_wagered"`
	TotalPayout     int     `json:"total_payout"`
	BonusTriggers   int     `json:"bonus_triggers"`
	FreeSpinsPlayed int     `json:"free_spins_played"`
	CurrentRTP      float64 `json:"current_rtp"` // В процентах
	WindowRTP       float64 `json:"window_rtp"`  // RTP по последним window_size раундам
	WindowSize      int     `json:"window_size"`
}

type RoundResponse struct {
	ID           string    `json:"id"`
	PlayedAt     time.Time `json:"played_at"`
	Mode         string    `json:"mode"`
	Dice         []int     `json:"dice"`
	Position     int       `json:"position"`
	Prize        Cell      `json:"prize"`
	Wager        int       `json:"wager"`
	Payout       int       `json:"payout"`
	BonusStarted bool      `json:"bonus_started"`
	BalanceAfter int       `json:"balance_after"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

package model

import "time"

// BetResult - снимок состояния, который видит клиент после ставки или сброса
type BetResult struct {
	Balance         int
	Dice            *DiceRoll
	LastPrize       *Cell
	AvailableToSpin bool
	BonusBoard      Board
	BonusMode       bool
	FreeSpins       int
	Board           Board
}

// RoundRecord - запись об одном сыгранном раунде
type RoundRecord struct {
	ID           string
	PlayedAt     time.Time
	Mode         Mode
	Dice         DiceRoll
	Position     int
	Prize        Cell
	Wager        int
	Payout       int
	BonusStarted bool
	BalanceAfter int
}

// Stats - агрегированная статистика по раундам
type Stats struct {
	TotalRounds     int
	TotalWagered    int
	TotalPayout     int
	BonusTriggers   int
	FreeSpinsPlayed int
	CurrentRTP      float64
	WindowRTP       float64
	WindowSize      int
}

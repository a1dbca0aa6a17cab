package model

type Mode string

const (
	ModeRegular Mode = "REGULAR"
	ModeBonus   Mode = "BONUS"
)

// DiceRoll - результат броска двух кубиков
type DiceRoll [2]int

func (d DiceRoll) Sum() int {
	return d[0] + d[1]
}

// BonusRound существует только в бонусном режиме.
// Обычный режим не несет ни бонусного поля, ни счетчика фриспинов.
type BonusRound struct {
	Board     Board
	FreeSpins int
}

// GameState - состояние игровой сессии
type GameState struct {
	Balance   int
	Position  int
	Bonus     *BonusRound
	LastPrize *Cell
	LastDice  *DiceRoll
}

// NewGameState состояние по умолчанию для новой сессии
func NewGameState(startBalance int) *GameState {
	return &GameState{
		Balance:  startBalance,
		Position: 0,
	}
}

func (s *GameState) Mode() Mode {
	if s.Bonus != nil {
		return ModeBonus
	}
	return ModeRegular
}

// FreeSpins остаток фриспинов, 0 в обычном режиме
func (s *GameState) FreeSpins() int {
	if s.Bonus == nil {
		return 0
	}
	return s.Bonus.FreeSpins
}

// BonusBoard бонусное поле или nil в обычном режиме
func (s *GameState) BonusBoard() Board {
	if s.Bonus == nil {
		return nil
	}
	return s.Bonus.Board
}

// AvailableToSpin вычисляется на каждом ходу и нигде не хранится
func (s *GameState) AvailableToSpin(wager int) bool {
	if s.Bonus != nil {
		return s.Bonus.FreeSpins > 0
	}
	return s.Balance > wager
}

// Clone глубокая копия состояния
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	out := *s
	if s.Bonus != nil {
		out.Bonus = &BonusRound{
			Board:     s.Bonus.Board.Clone(),
			FreeSpins: s.Bonus.FreeSpins,
		}
	}
	if s.LastPrize != nil {
		prize := *s.LastPrize
		out.LastPrize = &prize
	}
	if s.LastDice != nil {
		dice := *s.LastDice
		out.LastDice = &dice
	}
	return &out
}
